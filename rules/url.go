package rules

import (
	"regexp"
	"strings"
	"sync"

	"github.com/reoring/rulekit"
	"golang.org/x/net/idna"
)

// Url checks that a string is an absolute URL with one of ValidSchemes.
type Url struct {
	// ValidSchemes defaults to http and https.
	ValidSchemes []string
	// EnableIDN accepts internationalized host names.
	EnableIDN bool

	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	urlMessage               = "{Property} is not a valid URL."
	urlIncorrectInputMessage = "{Property} must be a string. {type} given."

	maxURLLength = 2000
)

var (
	defaultURLSchemes = []string{"http", "https"}
	urlHostPattern    = regexp.MustCompile(`^([^:/?#]+://)([^/?#:]+)`)
	urlPatterns       sync.Map // schemes key -> *regexp.Regexp
)

func (Url) Name() string                 { return "url" }
func (Url) Handler() rulekit.RuleHandler { return urlHandler{} }

type urlHandler struct{}

func (urlHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Url](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	s, ok := stringOf(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, urlIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	schemes := r.ValidSchemes
	if len(schemes) == 0 {
		schemes = defaultURLSchemes
	}
	if !validURL(s, schemes, r.EnableIDN) {
		res.AddError(msg(r.Message, urlMessage), ctx.ErrorParams("value", s))
	}
	return res, nil
}

func validURL(s string, schemes []string, idn bool) bool {
	if len(s) > maxURLLength {
		return false
	}
	if idn {
		if m := urlHostPattern.FindStringSubmatchIndex(s); m != nil {
			host := s[m[4]:m[5]]
			ascii, err := idna.Lookup.ToASCII(host)
			if err != nil {
				return false
			}
			s = s[:m[4]] + ascii + s[m[5]:]
		}
	}
	return urlPattern(schemes).MatchString(s)
}

func urlPattern(schemes []string) *regexp.Regexp {
	key := strings.Join(schemes, "|")
	if re, ok := urlPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	quoted := make([]string, len(schemes))
	for i, sc := range schemes {
		quoted[i] = regexp.QuoteMeta(sc)
	}
	re := regexp.MustCompile(`^(?i:` + strings.Join(quoted, "|") + `)://` +
		`(?:[a-zA-Z0-9][a-zA-Z0-9_-]*)(?:\.[a-zA-Z0-9][a-zA-Z0-9_-]*)+` +
		`(?::\d{1,5})?(?:[?/#].*)?$`)
	actual, _ := urlPatterns.LoadOrStore(key, re)
	return actual.(*regexp.Regexp)
}
