// Package pojomatic implements equals, hashCode, toString and diff for
// struct types from declarative `pojo` struct tags.
//
// A type opts in by tagging fields:
//
//	type Point struct {
//		_     struct{} `pojo:"?policy=all"`
//		X     int      `pojo:""`
//		Y     int      `pojo:""`
//		Label string   `pojo:"name?policy=tostring"`
//	}
//
// or by auto detection on its blank class field:
//
//	type Person struct {
//		_         struct{} `pojo:"?auto=fields"`
//		FirstName string
//		LastName  string
//		password  string `pojo:"-"`
//	}
//
// The first use of a type introspects it and generates a unit which is
// cached for the lifetime of the process:
//
//	pojomatic.Equals(p1, p2)
//	pojomatic.HashCode(p1)
//	pojomatic.ToString(p1) // Person{firstName: {Ada}, lastName: {Lovelace}}
//	pojomatic.Diff(p1, p2)
//
// Embedding a struct by value makes the outer type a subtype of the
// embedded one; the embedded properties are expanded where the embedding
// field is declared.
package pojomatic
