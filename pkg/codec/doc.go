// Package codec is the schema-driven engine that maps between typed
// entity structs and the nested-list form produced by package sexpr.
//
// An entity describes itself through the Entity interface: a lead token
// name plus an ordered set of Field bindings built with the helper
// constructors (Scalar, Named, Child, FlagField, Group, ...). Each
// binding closes over a pointer into the entity, so the engine needs no
// runtime type introspection: classification is resolved from the
// declared bindings once per concrete type and cached.
//
// Decode walks the declared fields in schema order. Fields with a token
// name are matched by a labeled scan over the not-yet-consumed input
// elements; bare scalars fall back to the next unconsumed positional
// element. Nested entities recurse with their own consumption state.
// Anything left unclaimed afterwards is reported as an unused token.
//
// Error tolerance is chosen per top-level Decode call: Strict turns the
// first issue into an error, Failsafe substitutes defaults and collects
// the issues, Silent substitutes defaults quietly. Encode is the exact
// inverse and only fails on programming errors, never on data.
package codec
