// Package dof defines the composite degrees of freedom of a lattice gauge
// model.
//
// # Payloads
//
// A degree of freedom carries a payload value V that knows how to add itself
// to another V (Payload). cyclic.Element, spin.State and Integer all qualify.
// Payloads that form a group also expose their identity (Group), which is
// what a PurePlaquette reports as its charge.
//
// # Kinds
//
// Site is the generic degree of freedom and Link is a gauge link. They are
// distinct types, so Site.Add only accepts a Site and Link.Add only accepts a
// Link. Code that handles degrees of freedom through the DegreeOfFreedom
// interface uses the package-level Add, which compares Kind tags at run time
// and fails with shared.ErrKindMismatch.
//
// # Composites
//
// Plaquette owns two links, top and bottom, and derives the longitudinal
// polarization top + bottom. PurePlaquette additionally carries zero charge.
// A plaquette variant carrying matter charge is not modelled yet.
//
// ChargeSite is a two-state fermionic charge with an orientation; it is not
// composed with plaquettes.
package dof
