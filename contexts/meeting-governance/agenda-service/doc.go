// Package agendaservice maintains the ordered agenda of a meeting inside the
// meeting-governance context.
//
// The module owns agenda item creation under an existing meeting, the item
// status lifecycle, atomic reordering of a meeting's agenda, and per-item
// discussion comments. Business rules live in the application/domain layers;
// persistence sits behind ports with postgres and in-memory adapters.
package agendaservice
