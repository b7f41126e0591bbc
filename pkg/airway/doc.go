// Package airway computes the 2D arrangement of teeth, laryngoscope blade and
// endotracheal tube for a set of airway parameters.
//
// Solve is a pure function: the same Parameters always produce the same
// Geometry, and nothing is cached between calls. Out-of-domain inputs are not
// rejected by Solve; they surface as NaN coordinates in the result. Callers
// that want an explicit failure use SolveChecked, which validates the input
// and reports unreachable targets as a *DomainError.
//
// Coordinates are millimetres with y growing downwards, the way the geometry
// is painted on screen. Angles are radians.
package airway
