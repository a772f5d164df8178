package canvas

import (
	"context"
	"net/http"
	"time"
)

// Client is the top-level interface over the Canvas REST API, grouping
// one sub-client per resource family.
type Client interface {
	Courses() CoursesClient
	Bookmarks() BookmarksClient
	Sections() SectionsClient
	Tabs() TabsClient
	Modules() ModulesClient
	Pages() PagesClient
	Files() FilesClient
	Announcements() AnnouncementsClient
	DiscussionTopics() DiscussionTopicsClient
}

// CoursesClient covers the courses endpoints.
type CoursesClient interface {
	// List fetches the first page only (one round trip).
	List(ctx context.Context, opts *ListCoursesOptions) ([]Course, error)
	// ListAll walks every page and returns the whole collection.
	ListAll(ctx context.Context, opts *ListCoursesOptions) ([]Course, error)
	// Paginate returns a lazy cursor with zero pages pre-fetched.
	Paginate(ctx context.Context, opts *ListCoursesOptions) (*Pagination[Course], error)
	Get(ctx context.Context, courseID int64, opts *GetCourseOptions) (*Course, error)
	ListUsers(ctx context.Context, courseID int64, opts *ListCourseUsersOptions) ([]User, error)
}

// BookmarksClient covers the bookmarks endpoints.
type BookmarksClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Bookmark, error)
	ListAll(ctx context.Context, opts *ListOptions) ([]Bookmark, error)
	Paginate(ctx context.Context, opts *ListOptions) (*Pagination[Bookmark], error)
	Get(ctx context.Context, bookmarkID int64) (*Bookmark, error)
	Create(ctx context.Context, request *BookmarkRequest) (*Bookmark, error)
	Update(ctx context.Context, bookmarkID int64, request *BookmarkRequest) (*Bookmark, error)
	Delete(ctx context.Context, bookmarkID int64) error
}

// SectionsClient covers the sections endpoints.
type SectionsClient interface {
	List(ctx context.Context, courseID int64, opts *ListSectionsOptions) ([]Section, error)
	ListAll(ctx context.Context, courseID int64, opts *ListSectionsOptions) ([]Section, error)
	Paginate(ctx context.Context, courseID int64, opts *ListSectionsOptions) (*Pagination[Section], error)
	Get(ctx context.Context, courseID, sectionID int64, opts *ListSectionsOptions) (*Section, error)
}

// TabsClient covers the tabs endpoints.
type TabsClient interface {
	List(ctx context.Context, courseID int64, opts *ListTabsOptions) ([]Tab, error)
	Update(ctx context.Context, courseID int64, tabID string, request *TabUpdateRequest) (*Tab, error)
}

// ModulesClient covers the modules endpoints.
type ModulesClient interface {
	List(ctx context.Context, courseID int64, opts *ListModulesOptions) ([]Module, error)
	ListAll(ctx context.Context, courseID int64, opts *ListModulesOptions) ([]Module, error)
	Paginate(ctx context.Context, courseID int64, opts *ListModulesOptions) (*Pagination[Module], error)
	Get(ctx context.Context, courseID, moduleID int64, opts *ListModulesOptions) (*Module, error)
	ListItems(ctx context.Context, courseID, moduleID int64, opts *ListModuleItemsOptions) ([]ModuleItem, error)
	GetItem(ctx context.Context, courseID, moduleID, itemID int64, opts *ListModuleItemsOptions) (*ModuleItem, error)
}

// PagesClient covers the wiki pages endpoints.
type PagesClient interface {
	List(ctx context.Context, courseID int64, opts *ListPagesOptions) ([]WikiPage, error)
	ListAll(ctx context.Context, courseID int64, opts *ListPagesOptions) ([]WikiPage, error)
	Paginate(ctx context.Context, courseID int64, opts *ListPagesOptions) (*Pagination[WikiPage], error)
	Get(ctx context.Context, courseID int64, pageURL string) (*WikiPage, error)
	GetFrontPage(ctx context.Context, courseID int64) (*WikiPage, error)
}

// FilesClient covers the files and folders endpoints.
type FilesClient interface {
	List(ctx context.Context, courseID int64, opts *ListFilesOptions) ([]File, error)
	ListAll(ctx context.Context, courseID int64, opts *ListFilesOptions) ([]File, error)
	Paginate(ctx context.Context, courseID int64, opts *ListFilesOptions) (*Pagination[File], error)
	Get(ctx context.Context, fileID int64) (*File, error)
	ListFolders(ctx context.Context, courseID int64, opts *ListOptions) ([]Folder, error)
	GetFolder(ctx context.Context, folderID int64) (*Folder, error)
}

// AnnouncementsClient covers the announcements endpoints.
type AnnouncementsClient interface {
	List(ctx context.Context, opts *ListAnnouncementsOptions) ([]Announcement, error)
	ListAll(ctx context.Context, opts *ListAnnouncementsOptions) ([]Announcement, error)
	Paginate(ctx context.Context, opts *ListAnnouncementsOptions) (*Pagination[Announcement], error)
}

// DiscussionTopicsClient covers the discussion topics endpoints.
type DiscussionTopicsClient interface {
	List(ctx context.Context, courseID int64, opts *ListDiscussionTopicsOptions) ([]DiscussionTopic, error)
	ListAll(ctx context.Context, courseID int64, opts *ListDiscussionTopicsOptions) ([]DiscussionTopic, error)
	Paginate(ctx context.Context, courseID int64, opts *ListDiscussionTopicsOptions) (*Pagination[DiscussionTopic], error)
	Get(ctx context.Context, courseID, topicID int64) (*DiscussionTopic, error)
}

// Config represents client configuration for building a canvas.Client.
//
// BaseURL is the deployment origin, e.g. "https://cool.ntu.edu.tw" or
// "https://canvas.instructure.com". AccessToken, when set, is sent as a
// Bearer token. Alternatively an HTTPClient carrying a cookie jar with an
// authenticated session can be supplied; write requests then pick up the
// X-CSRF-Token header from the session's _csrf_token cookie.
type Config struct {
	BaseURL     string
	AccessToken string

	// HTTPClient optionally supplies the underlying transport session,
	// typically one with a cookie jar holding an authenticated session.
	// The client borrows it; lifetime stays with the caller.
	HTTPClient *http.Client

	// HTTPTimeout applies when HTTPClient is nil.
	HTTPTimeout time.Duration

	UserAgent string
	Debug     bool
	Logger    Logger

	// StrictPagination makes a missing Link header on a paginated
	// response an error instead of a warning. Leave false when talking
	// to deployments known to omit the header.
	StrictPagination bool
}

// ListOptions carries the pagination parameters shared by plain list
// endpoints. Page is a string because bookmark-paginated endpoints use
// opaque page identifiers, not numbers. Params is an arbitrary extra
// query tree joined after the named parameters; duplicate names are legal.
type ListOptions struct {
	Page    string
	PerPage int
	Params  any
}

// Query flattens the options into wire pairs.
func (o *ListOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	return Join(o.members(), o.Params)
}

func (o *ListOptions) members() []Member {
	var members []Member

	if o.Page != "" {
		members = append(members, Member{Name: "page", Value: o.Page})
	}

	if o.PerPage > 0 {
		members = append(members, Member{Name: "per_page", Value: o.PerPage})
	}

	return members
}

// ListCoursesOptions narrows the course listing.
// https://canvas.instructure.com/doc/api/courses.html#method.courses.index
type ListCoursesOptions struct {
	EnrollmentType  string
	EnrollmentState string
	Include         []string
	State           []string
	ListOptions
}

func (o *ListCoursesOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if o.EnrollmentType != "" {
		members = append(members, Member{Name: "enrollment_type", Value: o.EnrollmentType})
	}

	if o.EnrollmentState != "" {
		members = append(members, Member{Name: "enrollment_state", Value: o.EnrollmentState})
	}

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	if len(o.State) > 0 {
		members = append(members, Member{Name: "state", Value: o.State})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// GetCourseOptions narrows a single-course fetch.
type GetCourseOptions struct {
	Include      []string
	TeacherLimit int
	Params       any
}

func (o *GetCourseOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	if o.TeacherLimit > 0 {
		members = append(members, Member{Name: "teacher_limit", Value: o.TeacherLimit})
	}

	return Join(members, o.Params)
}

// ListCourseUsersOptions narrows the course users listing.
type ListCourseUsersOptions struct {
	SearchTerm      string
	EnrollmentType  []string
	EnrollmentState []string
	Include         []string
	ListOptions
}

func (o *ListCourseUsersOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if o.SearchTerm != "" {
		members = append(members, Member{Name: "search_term", Value: o.SearchTerm})
	}

	if len(o.EnrollmentType) > 0 {
		members = append(members, Member{Name: "enrollment_type", Value: o.EnrollmentType})
	}

	if len(o.EnrollmentState) > 0 {
		members = append(members, Member{Name: "enrollment_state", Value: o.EnrollmentState})
	}

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// BookmarkRequest carries the writable bookmark fields.
type BookmarkRequest struct {
	Name     string
	URL      string
	Position int
	Data     string
}

func (r *BookmarkRequest) Query() ([]Pair, error) {
	if r == nil {
		return nil, nil
	}

	var members []Member

	if r.Name != "" {
		members = append(members, Member{Name: "name", Value: r.Name})
	}

	if r.URL != "" {
		members = append(members, Member{Name: "url", Value: r.URL})
	}

	if r.Position > 0 {
		members = append(members, Member{Name: "position", Value: r.Position})
	}

	if r.Data != "" {
		members = append(members, Member{Name: "data", Value: r.Data})
	}

	return Flatten(members)
}

// ListSectionsOptions narrows the sections listing.
type ListSectionsOptions struct {
	Include []string
	ListOptions
}

func (o *ListSectionsOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// ListTabsOptions narrows the tabs listing.
type ListTabsOptions struct {
	Include []string
	Params  any
}

func (o *ListTabsOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	return Join(members, o.Params)
}

// TabUpdateRequest carries the writable tab fields.
type TabUpdateRequest struct {
	Position int
	Hidden   bool
}

func (r *TabUpdateRequest) Query() ([]Pair, error) {
	if r == nil {
		return nil, nil
	}

	var members []Member

	if r.Position > 0 {
		members = append(members, Member{Name: "position", Value: r.Position})
	}

	if r.Hidden {
		members = append(members, Member{Name: "hidden", Value: r.Hidden})
	}

	return Flatten(members)
}

// ListModulesOptions narrows the modules listing.
type ListModulesOptions struct {
	Include    []string
	SearchTerm string
	StudentID  string
	ListOptions
}

func (o *ListModulesOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	if o.SearchTerm != "" {
		members = append(members, Member{Name: "search_term", Value: o.SearchTerm})
	}

	if o.StudentID != "" {
		members = append(members, Member{Name: "student_id", Value: o.StudentID})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// ListModuleItemsOptions narrows the module items listing.
type ListModuleItemsOptions = ListModulesOptions

// ListPagesOptions narrows the wiki pages listing.
type ListPagesOptions struct {
	Sort       string
	Order      string
	SearchTerm string
	Published  *bool
	ListOptions
}

func (o *ListPagesOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if o.Sort != "" {
		members = append(members, Member{Name: "sort", Value: o.Sort})
	}

	if o.Order != "" {
		members = append(members, Member{Name: "order", Value: o.Order})
	}

	if o.SearchTerm != "" {
		members = append(members, Member{Name: "search_term", Value: o.SearchTerm})
	}

	if o.Published != nil {
		members = append(members, Member{Name: "published", Value: *o.Published})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// ListFilesOptions narrows the files listing.
type ListFilesOptions struct {
	ContentTypes []string
	SearchTerm   string
	Include      []string
	Only         []string
	Sort         string
	Order        string
	ListOptions
}

func (o *ListFilesOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.ContentTypes) > 0 {
		members = append(members, Member{Name: "content_types", Value: o.ContentTypes})
	}

	if o.SearchTerm != "" {
		members = append(members, Member{Name: "search_term", Value: o.SearchTerm})
	}

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	if len(o.Only) > 0 {
		members = append(members, Member{Name: "only", Value: o.Only})
	}

	if o.Sort != "" {
		members = append(members, Member{Name: "sort", Value: o.Sort})
	}

	if o.Order != "" {
		members = append(members, Member{Name: "order", Value: o.Order})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// ListAnnouncementsOptions narrows the announcements listing.
// ContextCodes is required by the API ("course_123" forms).
type ListAnnouncementsOptions struct {
	ContextCodes   []string
	StartDate      string
	EndDate        string
	ActiveOnly     bool
	LatestOnly     bool
	Include        []string
	ListOptions
}

func (o *ListAnnouncementsOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.ContextCodes) > 0 {
		members = append(members, Member{Name: "context_codes", Value: o.ContextCodes})
	}

	if o.StartDate != "" {
		members = append(members, Member{Name: "start_date", Value: o.StartDate})
	}

	if o.EndDate != "" {
		members = append(members, Member{Name: "end_date", Value: o.EndDate})
	}

	if o.ActiveOnly {
		members = append(members, Member{Name: "active_only", Value: o.ActiveOnly})
	}

	if o.LatestOnly {
		members = append(members, Member{Name: "latest_only", Value: o.LatestOnly})
	}

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}

// ListDiscussionTopicsOptions narrows the discussion topics listing.
type ListDiscussionTopicsOptions struct {
	Include           []string
	OrderBy           string
	Scope             string
	OnlyAnnouncements bool
	FilterBy          string
	SearchTerm        string

	// ExcludeLockedModuleTopics drops topics locked behind module
	// progression requirements.
	ExcludeLockedModuleTopics bool

	ListOptions
}

func (o *ListDiscussionTopicsOptions) Query() ([]Pair, error) {
	if o == nil {
		return nil, nil
	}

	var members []Member

	if len(o.Include) > 0 {
		members = append(members, Member{Name: "include", Value: o.Include})
	}

	if o.OrderBy != "" {
		members = append(members, Member{Name: "order_by", Value: o.OrderBy})
	}

	if o.Scope != "" {
		members = append(members, Member{Name: "scope", Value: o.Scope})
	}

	if o.OnlyAnnouncements {
		members = append(members, Member{Name: "only_announcements", Value: o.OnlyAnnouncements})
	}

	if o.FilterBy != "" {
		members = append(members, Member{Name: "filter_by", Value: o.FilterBy})
	}

	if o.SearchTerm != "" {
		members = append(members, Member{Name: "search_term", Value: o.SearchTerm})
	}

	if o.ExcludeLockedModuleTopics {
		members = append(members, Member{Name: "exclude_context_module_locked_topics", Value: o.ExcludeLockedModuleTopics})
	}

	members = append(members, o.members()...)

	return Join(members, o.Params)
}
