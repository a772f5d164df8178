// Package canvas provides types, interfaces, and helpers for working with
// the Canvas LMS REST API.
//
// # Overview
//
// The canvas package defines the domain types (e.g., Course, Module,
// WikiPage, File) and the interfaces for resource-oriented clients (e.g.,
// CoursesClient, ModulesClient). A concrete implementation of these
// clients is provided by the canvasclient package, which wires
// configuration, transport, and authentication. Most consumers should
// import canvasclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// # Queries
//
// Canvas accepts Rails-style bracketed query parameters; Flatten and Join
// turn nested trees of maps, slices, and Member lists into ordered wire
// pairs:
//
//	pairs, _ := canvas.Flatten(map[string]any{
//	  "include": []string{"term", "total_students"},
//	})
//	// include[]=term&include[]=total_students
//
// Duplicate names are legal and order is preserved, which matters for
// parameters like include[] that the server reads positionally.
//
// # Pagination
//
// Collection endpoints answer with RFC 5988 Link headers. Pagination[T]
// is a lazy cursor over them: Next and Prev walk the collection and
// accumulate items, First and Last seek without accumulating, and Items
// exposes the whole walk as an iterator:
//
//	p, _ := cli.Courses().Paginate(ctx, nil)
//	for course, err := range p.Items(ctx) {
//	  if err != nil { break }
//	  _ = course
//	}
//
// Paginate is the three-mode dispatcher the resource clients build on:
// one page (ModeSinglePage), a live cursor (ModeLazy), or the fully
// materialized collection (ModeEager).
//
// # Errors
//
// API failures are represented by HTTPError, with AuthenticationError for
// the expired-session sub-case of 401 and DecodeError for bodies that are
// not the JSON they claim to be. Helpers such as IsNotFound,
// IsUnauthorized, and IsAuthenticationExpired make it easy to branch on
// common cases.
package canvas
