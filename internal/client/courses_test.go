package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ntucool/canvas/internal/client"
	canvashttp "github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoursesClient(serverURL string) *client.CoursesClient {
	return client.NewCoursesClient(canvashttp.NewClient(serverURL, nil))
}

func TestCoursesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses", request.URL.Path)
		assert.Equal(t, "enrollment_state=active&per_page=50", request.URL.RawQuery)
		_, _ = writer.Write([]byte(`[{"id":1,"name":"Calculus","course_code":"MATH101"}]`))
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	courses, err := coursesClient.List(context.Background(), &canvas.ListCoursesOptions{
		EnrollmentState: "active",
		ListOptions:     canvas.ListOptions{PerPage: 50},
	})
	require.NoError(t, err)

	require.Len(t, courses, 1)
	assert.Equal(t, int64(1), courses[0].ID)
	assert.Equal(t, "MATH101", courses[0].CourseCode)
}

func TestCoursesClient_ListStopsAfterOnePage(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		writer.Header().Set("Link", `<https://example.test/api/v1/courses?page=2>; rel="next"`)
		_, _ = writer.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	courses, err := coursesClient.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, courses, 1)
	assert.Equal(t, 1, requests)
}

func TestCoursesClient_ListAll(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.RawQuery {
		case "":
			writer.Header().Set("Link", `<`+server.URL+`/api/v1/courses?page=2>; rel="next"`)
			_, _ = writer.Write([]byte(`[{"id":1},{"id":2}]`))
		case "page=2":
			writer.Header().Set("Link", `<`+server.URL+`/api/v1/courses>; rel="first"`)
			_, _ = writer.Write([]byte(`[{"id":3}]`))
		default:
			http.NotFound(writer, request)
		}
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	courses, err := coursesClient.ListAll(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, courses, 3)
	assert.Equal(t, int64(3), courses[2].ID)
}

func TestCoursesClient_Paginate(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		_, _ = writer.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	pagination, err := coursesClient.Paginate(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, pagination)

	// Nothing is fetched until the cursor moves.
	assert.Equal(t, 0, requests)

	courses, err := pagination.Next(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, 1, requests)
}

func TestCoursesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses/42", request.URL.Path)
		assert.Equal(t, "include%5B%5D=term", request.URL.RawQuery)
		_, _ = writer.Write([]byte(`while(1);{"id":42,"name":"Linear Algebra"}`))
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	course, err := coursesClient.Get(context.Background(), 42, &canvas.GetCourseOptions{
		Include: []string{"term"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", course.Name)
}

func TestCoursesClient_GetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"errors":[{"message":"The specified resource does not exist."}]}`))
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	_, err := coursesClient.Get(context.Background(), 999, nil)
	require.Error(t, err)
	assert.True(t, canvas.IsNotFound(err))
}

func TestCoursesClient_ListUsers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses/42/users", request.URL.Path)
		assert.Equal(t, "enrollment_type%5B%5D=teacher", request.URL.RawQuery)
		_, _ = writer.Write([]byte(`[{"id":7,"name":"Grace"}]`))
	}))
	defer server.Close()

	coursesClient := newCoursesClient(server.URL)

	users, err := coursesClient.ListUsers(context.Background(), 42, &canvas.ListCourseUsersOptions{
		EnrollmentType: []string{"teacher"},
	})
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, "Grace", users[0].Name)
}
