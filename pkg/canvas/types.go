package canvas

// Standard pagination link relations returned by Canvas. The set is open:
// Links may carry any relation name the server chooses to send.
const (
	RelCurrent = "current"
	RelNext    = "next"
	RelPrev    = "prev"
	RelFirst   = "first"
	RelLast    = "last"
)

// Link is one pagination link relation parsed from an HTTP Link response
// header (RFC 5988).
type Link struct {
	URL string `json:"url" yaml:"url"`
	Rel string `json:"rel" yaml:"rel"`
}

// Links maps a relation name to its link. Each page fetch replaces the
// whole set; relations are never merged across responses.
type Links map[string]Link

// Has reports whether the relation is present.
func (l Links) Has(rel string) bool {
	_, ok := l[rel]

	return ok
}

// Get returns the link for the relation, if present.
func (l Links) Get(rel string) (Link, bool) {
	lnk, ok := l[rel]

	return lnk, ok
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
