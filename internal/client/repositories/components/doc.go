// Package components stores installed equipment under the "components" key.
//
// A component must reference an existing ship when it is added; the ship
// is looked up in the ships repository cache. The ship of a component never
// changes afterwards, so updates are not re-checked against it and a
// component whose ship was deleted under the orphan policy stays editable.
package components
