package canvas

import (
	"time"
)

// Typed views over decoded Canvas API objects. Field sets follow the
// documented API models (https://canvas.instructure.com/doc/api/); fields
// the server may omit or null out are pointers or left as zero values.

// Course represents a Canvas course.
// https://canvas.instructure.com/doc/api/courses.html#Course
type Course struct {
	ID                        int64           `json:"id"                                   yaml:"id"`
	SISCourseID               string          `json:"sis_course_id,omitempty"              yaml:"sis_course_id,omitempty"`
	UUID                      string          `json:"uuid"                                 yaml:"uuid"`
	IntegrationID             string          `json:"integration_id,omitempty"             yaml:"integration_id,omitempty"`
	Name                      string          `json:"name"                                 yaml:"name"`
	CourseCode                string          `json:"course_code"                          yaml:"course_code"`
	OriginalName              string          `json:"original_name,omitempty"              yaml:"original_name,omitempty"`
	WorkflowState             string          `json:"workflow_state"                       yaml:"workflow_state"`
	AccountID                 int64           `json:"account_id"                           yaml:"account_id"`
	RootAccountID             int64           `json:"root_account_id"                      yaml:"root_account_id"`
	EnrollmentTermID          int64           `json:"enrollment_term_id"                   yaml:"enrollment_term_id"`
	CreatedAt                 *time.Time      `json:"created_at,omitempty"                 yaml:"created_at,omitempty"`
	StartAt                   *time.Time      `json:"start_at,omitempty"                   yaml:"start_at,omitempty"`
	EndAt                     *time.Time      `json:"end_at,omitempty"                     yaml:"end_at,omitempty"`
	Locale                    string          `json:"locale,omitempty"                     yaml:"locale,omitempty"`
	Enrollments               []Enrollment    `json:"enrollments,omitempty"                yaml:"enrollments,omitempty"`
	TotalStudents             int             `json:"total_students,omitempty"             yaml:"total_students,omitempty"`
	Calendar                  *Calendar       `json:"calendar,omitempty"                   yaml:"calendar,omitempty"`
	DefaultView               string          `json:"default_view,omitempty"               yaml:"default_view,omitempty"`
	SyllabusBody              string          `json:"syllabus_body,omitempty"              yaml:"syllabus_body,omitempty"`
	NeedsGradingCount         int             `json:"needs_grading_count,omitempty"        yaml:"needs_grading_count,omitempty"`
	Term                      *Term           `json:"term,omitempty"                       yaml:"term,omitempty"`
	CourseProgress            *CourseProgress `json:"course_progress,omitempty"            yaml:"course_progress,omitempty"`
	ApplyAssignmentGroupWts   bool            `json:"apply_assignment_group_weights"       yaml:"apply_assignment_group_weights"`
	Permissions               map[string]bool `json:"permissions,omitempty"                yaml:"permissions,omitempty"`
	IsPublic                  bool            `json:"is_public,omitempty"                  yaml:"is_public,omitempty"`
	IsPublicToAuthUsers       bool            `json:"is_public_to_auth_users,omitempty"    yaml:"is_public_to_auth_users,omitempty"`
	PublicSyllabus            bool            `json:"public_syllabus,omitempty"            yaml:"public_syllabus,omitempty"`
	PublicDescription         string          `json:"public_description,omitempty"         yaml:"public_description,omitempty"`
	StorageQuotaMB            int             `json:"storage_quota_mb,omitempty"           yaml:"storage_quota_mb,omitempty"`
	HideFinalGrades           bool            `json:"hide_final_grades,omitempty"          yaml:"hide_final_grades,omitempty"`
	License                   string          `json:"license,omitempty"                    yaml:"license,omitempty"`
	CourseFormat              string          `json:"course_format,omitempty"              yaml:"course_format,omitempty"`
	AccessRestrictedByDate    bool            `json:"access_restricted_by_date,omitempty"  yaml:"access_restricted_by_date,omitempty"`
	TimeZone                  string          `json:"time_zone,omitempty"                  yaml:"time_zone,omitempty"`
	Blueprint                 bool            `json:"blueprint,omitempty"                  yaml:"blueprint,omitempty"`
	RestrictEnrollmentsDates  bool            `json:"restrict_enrollments_to_course_dates" yaml:"restrict_enrollments_to_course_dates"`
	OpenEnrollment            bool            `json:"open_enrollment,omitempty"            yaml:"open_enrollment,omitempty"`
	SelfEnrollment            bool            `json:"self_enrollment,omitempty"            yaml:"self_enrollment,omitempty"`
	AllowStudentAssignmentEd  bool            `json:"allow_student_assignment_edits,omitempty" yaml:"allow_student_assignment_edits,omitempty"`
	AllowWikiComments         bool            `json:"allow_wiki_comments,omitempty"        yaml:"allow_wiki_comments,omitempty"`
	AllowStudentForumAttach   bool            `json:"allow_student_forum_attachments,omitempty" yaml:"allow_student_forum_attachments,omitempty"`
}

// Term represents an enrollment term embedded in a course response.
type Term struct {
	ID      int64      `json:"id"                 yaml:"id"`
	Name    string     `json:"name"               yaml:"name"`
	StartAt *time.Time `json:"start_at,omitempty" yaml:"start_at,omitempty"`
	EndAt   *time.Time `json:"end_at,omitempty"   yaml:"end_at,omitempty"`
}

// Calendar carries a course or user calendar feed URL.
type Calendar struct {
	ICS string `json:"ics" yaml:"ics"`
}

// CourseProgress reports module progress for the current user.
type CourseProgress struct {
	RequirementCount          int        `json:"requirement_count"            yaml:"requirement_count"`
	RequirementCompletedCount int        `json:"requirement_completed_count"  yaml:"requirement_completed_count"`
	NextRequirementURL        string     `json:"next_requirement_url,omitempty" yaml:"next_requirement_url,omitempty"`
	CompletedAt               *time.Time `json:"completed_at,omitempty"       yaml:"completed_at,omitempty"`
}

// Enrollment represents a user's enrollment in a course or section.
// https://canvas.instructure.com/doc/api/enrollments.html#Enrollment
type Enrollment struct {
	ID                   int64      `json:"id,omitempty"                      yaml:"id,omitempty"`
	CourseID             int64      `json:"course_id,omitempty"               yaml:"course_id,omitempty"`
	CourseSectionID      int64      `json:"course_section_id,omitempty"       yaml:"course_section_id,omitempty"`
	EnrollmentState      string     `json:"enrollment_state,omitempty"        yaml:"enrollment_state,omitempty"`
	Type                 string     `json:"type,omitempty"                    yaml:"type,omitempty"`
	Role                 string     `json:"role,omitempty"                    yaml:"role,omitempty"`
	RoleID               int64      `json:"role_id,omitempty"                 yaml:"role_id,omitempty"`
	UserID               int64      `json:"user_id,omitempty"                 yaml:"user_id,omitempty"`
	User                 *User      `json:"user,omitempty"                    yaml:"user,omitempty"`
	CreatedAt            *time.Time `json:"created_at,omitempty"              yaml:"created_at,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"              yaml:"updated_at,omitempty"`
	StartAt              *time.Time `json:"start_at,omitempty"                yaml:"start_at,omitempty"`
	EndAt                *time.Time `json:"end_at,omitempty"                  yaml:"end_at,omitempty"`
	LastActivityAt       *time.Time `json:"last_activity_at,omitempty"        yaml:"last_activity_at,omitempty"`
	TotalActivityTime    int        `json:"total_activity_time,omitempty"     yaml:"total_activity_time,omitempty"`
	LimitPrivilegesToCSS bool       `json:"limit_privileges_to_course_section,omitempty" yaml:"limit_privileges_to_course_section,omitempty"`
}

// User represents a Canvas user.
// https://canvas.instructure.com/doc/api/users.html#User
type User struct {
	ID            int64        `json:"id"                        yaml:"id"`
	Name          string       `json:"name"                      yaml:"name"`
	SortableName  string       `json:"sortable_name,omitempty"   yaml:"sortable_name,omitempty"`
	ShortName     string       `json:"short_name,omitempty"      yaml:"short_name,omitempty"`
	SISUserID     string       `json:"sis_user_id,omitempty"     yaml:"sis_user_id,omitempty"`
	IntegrationID string       `json:"integration_id,omitempty"  yaml:"integration_id,omitempty"`
	LoginID       string       `json:"login_id,omitempty"        yaml:"login_id,omitempty"`
	AvatarURL     string       `json:"avatar_url,omitempty"      yaml:"avatar_url,omitempty"`
	Email         string       `json:"email,omitempty"           yaml:"email,omitempty"`
	Locale        string       `json:"locale,omitempty"          yaml:"locale,omitempty"`
	TimeZone      string       `json:"time_zone,omitempty"       yaml:"time_zone,omitempty"`
	Bio           string       `json:"bio,omitempty"             yaml:"bio,omitempty"`
	Pronouns      string       `json:"pronouns,omitempty"        yaml:"pronouns,omitempty"`
	LastLogin     *time.Time   `json:"last_login,omitempty"      yaml:"last_login,omitempty"`
	Enrollments   []Enrollment `json:"enrollments,omitempty"     yaml:"enrollments,omitempty"`
}

// Section represents a course section.
// https://canvas.instructure.com/doc/api/sections.html#Section
type Section struct {
	ID                     int64      `json:"id"                                  yaml:"id"`
	Name                   string     `json:"name"                                yaml:"name"`
	SISSectionID           string     `json:"sis_section_id,omitempty"            yaml:"sis_section_id,omitempty"`
	IntegrationID          string     `json:"integration_id,omitempty"            yaml:"integration_id,omitempty"`
	SISImportID            int64      `json:"sis_import_id,omitempty"             yaml:"sis_import_id,omitempty"`
	CourseID               int64      `json:"course_id"                           yaml:"course_id"`
	SISCourseID            string     `json:"sis_course_id,omitempty"             yaml:"sis_course_id,omitempty"`
	StartAt                *time.Time `json:"start_at,omitempty"                  yaml:"start_at,omitempty"`
	EndAt                  *time.Time `json:"end_at,omitempty"                    yaml:"end_at,omitempty"`
	CreatedAt              *time.Time `json:"created_at,omitempty"                yaml:"created_at,omitempty"`
	RestrictToSectionDates bool       `json:"restrict_enrollments_to_section_dates,omitempty" yaml:"restrict_enrollments_to_section_dates,omitempty"`
	NonCrossListCourseID   int64      `json:"nonxlist_course_id,omitempty"        yaml:"nonxlist_course_id,omitempty"`
	TotalStudents          int        `json:"total_students,omitempty"            yaml:"total_students,omitempty"`
	Students               []User     `json:"students,omitempty"                  yaml:"students,omitempty"`
	PassbackStatus         string     `json:"passback_status,omitempty"           yaml:"passback_status,omitempty"`
}

// Tab represents a navigation tab on a course or group.
// https://canvas.instructure.com/doc/api/tabs.html
type Tab struct {
	ID         string `json:"id"                   yaml:"id"`
	HTMLURL    string `json:"html_url"             yaml:"html_url"`
	FullURL    string `json:"full_url,omitempty"   yaml:"full_url,omitempty"`
	Label      string `json:"label"                yaml:"label"`
	Type       string `json:"type"                 yaml:"type"`
	Hidden     bool   `json:"hidden,omitempty"     yaml:"hidden,omitempty"`
	Visibility string `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Position   int    `json:"position,omitempty"   yaml:"position,omitempty"`
}

// Bookmark represents a user bookmark.
// https://canvas.instructure.com/doc/api/bookmarks.html#Bookmark
type Bookmark struct {
	ID       int64  `json:"id"                 yaml:"id"`
	Name     string `json:"name"               yaml:"name"`
	URL      string `json:"url"                yaml:"url"`
	Position int    `json:"position,omitempty" yaml:"position,omitempty"`
	Data     any    `json:"data,omitempty"     yaml:"data,omitempty"`
}

// Module represents a course module.
// https://canvas.instructure.com/doc/api/modules.html#Module
type Module struct {
	ID                        int64        `json:"id"                                   yaml:"id"`
	WorkflowState             string       `json:"workflow_state"                       yaml:"workflow_state"`
	Position                  int          `json:"position"                             yaml:"position"`
	Name                      string       `json:"name"                                 yaml:"name"`
	UnlockAt                  *time.Time   `json:"unlock_at,omitempty"                  yaml:"unlock_at,omitempty"`
	RequireSequentialProgress bool         `json:"require_sequential_progress,omitempty" yaml:"require_sequential_progress,omitempty"`
	PrerequisiteModuleIDs     []int64      `json:"prerequisite_module_ids,omitempty"    yaml:"prerequisite_module_ids,omitempty"`
	ItemsCount                int          `json:"items_count"                          yaml:"items_count"`
	ItemsURL                  string       `json:"items_url"                            yaml:"items_url"`
	Items                     []ModuleItem `json:"items,omitempty"                      yaml:"items,omitempty"`
	State                     string       `json:"state,omitempty"                      yaml:"state,omitempty"`
	CompletedAt               *time.Time   `json:"completed_at,omitempty"               yaml:"completed_at,omitempty"`
	PublishFinalGrade         bool         `json:"publish_final_grade,omitempty"        yaml:"publish_final_grade,omitempty"`
	Published                 bool         `json:"published,omitempty"                  yaml:"published,omitempty"`
}

// ModuleItem represents a single item inside a module.
// https://canvas.instructure.com/doc/api/modules.html#ModuleItem
type ModuleItem struct {
	ID                    int64                  `json:"id"                               yaml:"id"`
	ModuleID              int64                  `json:"module_id"                        yaml:"module_id"`
	Position              int                    `json:"position,omitempty"               yaml:"position,omitempty"`
	Title                 string                 `json:"title"                            yaml:"title"`
	Indent                int                    `json:"indent,omitempty"                 yaml:"indent,omitempty"`
	Type                  string                 `json:"type"                             yaml:"type"`
	ContentID             int64                  `json:"content_id,omitempty"             yaml:"content_id,omitempty"`
	HTMLURL               string                 `json:"html_url,omitempty"               yaml:"html_url,omitempty"`
	URL                   string                 `json:"url,omitempty"                    yaml:"url,omitempty"`
	PageURL               string                 `json:"page_url,omitempty"               yaml:"page_url,omitempty"`
	ExternalURL           string                 `json:"external_url,omitempty"           yaml:"external_url,omitempty"`
	NewTab                bool                   `json:"new_tab,omitempty"                yaml:"new_tab,omitempty"`
	CompletionRequirement *CompletionRequirement `json:"completion_requirement,omitempty" yaml:"completion_requirement,omitempty"`
	ContentDetails        map[string]any         `json:"content_details,omitempty"        yaml:"content_details,omitempty"`
	Published             bool                   `json:"published,omitempty"              yaml:"published,omitempty"`
}

// CompletionRequirement describes what completes a module item.
type CompletionRequirement struct {
	Type      string  `json:"type"                yaml:"type"`
	MinScore  float64 `json:"min_score,omitempty" yaml:"min_score,omitempty"`
	Completed bool    `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// WikiPage represents a wiki page attached to a course or group.
// https://canvas.instructure.com/doc/api/pages.html#Page
type WikiPage struct {
	PageID         int64      `json:"page_id"                   yaml:"page_id"`
	URL            string     `json:"url"                       yaml:"url"`
	Title          string     `json:"title"                     yaml:"title"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
	HideFromStudents bool     `json:"hide_from_students,omitempty" yaml:"hide_from_students,omitempty"`
	EditingRoles   string     `json:"editing_roles,omitempty"   yaml:"editing_roles,omitempty"`
	LastEditedBy   *User      `json:"last_edited_by,omitempty"  yaml:"last_edited_by,omitempty"`
	Body           string     `json:"body,omitempty"            yaml:"body,omitempty"`
	Published      bool       `json:"published"                 yaml:"published"`
	FrontPage      bool       `json:"front_page"                yaml:"front_page"`
	LockedForUser  bool       `json:"locked_for_user,omitempty" yaml:"locked_for_user,omitempty"`
	LockExplanation string    `json:"lock_explanation,omitempty" yaml:"lock_explanation,omitempty"`
}

// File represents an uploaded file.
// https://canvas.instructure.com/doc/api/files.html#File
type File struct {
	ID            int64      `json:"id"                       yaml:"id"`
	UUID          string     `json:"uuid"                     yaml:"uuid"`
	FolderID      int64      `json:"folder_id"                yaml:"folder_id"`
	DisplayName   string     `json:"display_name"             yaml:"display_name"`
	Filename      string     `json:"filename"                 yaml:"filename"`
	ContentType   string     `json:"content-type"             yaml:"content-type"`
	URL           string     `json:"url"                      yaml:"url"`
	Size          int64      `json:"size"                     yaml:"size"`
	CreatedAt     *time.Time `json:"created_at,omitempty"     yaml:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"     yaml:"updated_at,omitempty"`
	UnlockAt      *time.Time `json:"unlock_at,omitempty"      yaml:"unlock_at,omitempty"`
	Locked        bool       `json:"locked,omitempty"         yaml:"locked,omitempty"`
	Hidden        bool       `json:"hidden,omitempty"         yaml:"hidden,omitempty"`
	LockAt        *time.Time `json:"lock_at,omitempty"        yaml:"lock_at,omitempty"`
	HiddenForUser bool       `json:"hidden_for_user,omitempty" yaml:"hidden_for_user,omitempty"`
	ThumbnailURL  string     `json:"thumbnail_url,omitempty"  yaml:"thumbnail_url,omitempty"`
	ModifiedAt    *time.Time `json:"modified_at,omitempty"    yaml:"modified_at,omitempty"`
	MimeClass     string     `json:"mime_class,omitempty"     yaml:"mime_class,omitempty"`
	MediaEntryID  string     `json:"media_entry_id,omitempty" yaml:"media_entry_id,omitempty"`
	LockedForUser bool       `json:"locked_for_user,omitempty" yaml:"locked_for_user,omitempty"`
}

// Folder represents a file folder.
// https://canvas.instructure.com/doc/api/files.html#Folder
type Folder struct {
	ID             int64      `json:"id"                        yaml:"id"`
	Name           string     `json:"name"                      yaml:"name"`
	FullName       string     `json:"full_name"                 yaml:"full_name"`
	ContextID      int64      `json:"context_id"                yaml:"context_id"`
	ContextType    string     `json:"context_type"              yaml:"context_type"`
	ParentFolderID int64      `json:"parent_folder_id,omitempty" yaml:"parent_folder_id,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
	LockAt         *time.Time `json:"lock_at,omitempty"         yaml:"lock_at,omitempty"`
	UnlockAt       *time.Time `json:"unlock_at,omitempty"       yaml:"unlock_at,omitempty"`
	Position       int        `json:"position,omitempty"        yaml:"position,omitempty"`
	Locked         bool       `json:"locked,omitempty"          yaml:"locked,omitempty"`
	FoldersURL     string     `json:"folders_url"               yaml:"folders_url"`
	FilesURL       string     `json:"files_url"                 yaml:"files_url"`
	FilesCount     int        `json:"files_count"               yaml:"files_count"`
	FoldersCount   int        `json:"folders_count"             yaml:"folders_count"`
	Hidden         bool       `json:"hidden,omitempty"          yaml:"hidden,omitempty"`
	HiddenForUser  bool       `json:"hidden_for_user,omitempty" yaml:"hidden_for_user,omitempty"`
	ForSubmissions bool       `json:"for_submissions"           yaml:"for_submissions"`
}

// DiscussionTopic represents a discussion topic; announcements are
// discussion topics served from the announcements endpoints.
// https://canvas.instructure.com/doc/api/discussion_topics.html
type DiscussionTopic struct {
	ID                      int64      `json:"id"                            yaml:"id"`
	Title                   string     `json:"title"                         yaml:"title"`
	Message                 string     `json:"message,omitempty"             yaml:"message,omitempty"`
	HTMLURL                 string     `json:"html_url"                      yaml:"html_url"`
	PostedAt                *time.Time `json:"posted_at,omitempty"           yaml:"posted_at,omitempty"`
	LastReplyAt             *time.Time `json:"last_reply_at,omitempty"       yaml:"last_reply_at,omitempty"`
	RequireInitialPost      bool       `json:"require_initial_post,omitempty" yaml:"require_initial_post,omitempty"`
	UserCanSeePosts         bool       `json:"user_can_see_posts,omitempty"  yaml:"user_can_see_posts,omitempty"`
	DiscussionSubentryCount int        `json:"discussion_subentry_count"     yaml:"discussion_subentry_count"`
	ReadState               string     `json:"read_state,omitempty"          yaml:"read_state,omitempty"`
	UnreadCount             int        `json:"unread_count,omitempty"        yaml:"unread_count,omitempty"`
	Subscribed              bool       `json:"subscribed,omitempty"          yaml:"subscribed,omitempty"`
	AssignmentID            int64      `json:"assignment_id,omitempty"       yaml:"assignment_id,omitempty"`
	DelayedPostAt           *time.Time `json:"delayed_post_at,omitempty"     yaml:"delayed_post_at,omitempty"`
	Published               bool       `json:"published"                     yaml:"published"`
	LockAt                  *time.Time `json:"lock_at,omitempty"             yaml:"lock_at,omitempty"`
	Locked                  bool       `json:"locked,omitempty"              yaml:"locked,omitempty"`
	Pinned                  bool       `json:"pinned,omitempty"              yaml:"pinned,omitempty"`
	LockedForUser           bool       `json:"locked_for_user,omitempty"     yaml:"locked_for_user,omitempty"`
	UserName                string     `json:"user_name,omitempty"           yaml:"user_name,omitempty"`
	Author                  *User      `json:"author,omitempty"              yaml:"author,omitempty"`
	Permissions             map[string]bool `json:"permissions,omitempty"    yaml:"permissions,omitempty"`
	DiscussionType          string     `json:"discussion_type,omitempty"     yaml:"discussion_type,omitempty"`
	IsAnnouncement          bool       `json:"is_announcement,omitempty"     yaml:"is_announcement,omitempty"`
	ContextCode             string     `json:"context_code,omitempty"        yaml:"context_code,omitempty"`
}

// Announcement is a DiscussionTopic served from the announcements
// endpoints.
type Announcement = DiscussionTopic
