// Package canvasclient provides the primary entry point for constructing
// a Canvas LMS API client that implements the canvas.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of
// the resource interfaces and types defined in the canvas package. Most
// applications should import canvasclient to build a client, then use the
// returned canvas.Client to access resource-specific clients, for example
// Courses(), Modules(), Files(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ntucool/canvas/pkg/canvas"
//	  "github.com/ntucool/canvas/pkg/canvasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With a user-generated access token:
//	  cli, err := canvasclient.New(&canvas.Config{
//	    BaseURL:     "https://canvas.example.edu",
//	    AccessToken: "7~...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of active courses
//	  courses, err := cli.Courses().List(ctx, &canvas.ListCoursesOptions{
//	    EnrollmentState: "active",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = courses
//	}
//
// # Cookie sessions
//
// Deployments that disable token generation can be driven through a
// browser session instead: NewWithCookies loads session cookies into a
// jar, and write requests mirror the _csrf_token cookie into the
// X-CSRF-Token header automatically.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithCookies that wrap New with the appropriate configuration.
package canvasclient
