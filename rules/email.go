package rules

import (
	"regexp"
	"strings"

	"github.com/reoring/rulekit"
	"golang.org/x/net/idna"
)

// Email checks that a string is an email address.
type Email struct {
	// AllowName accepts the `John Smith <john@example.com>` form.
	AllowName bool
	// EnableIDN accepts internationalized domain names.
	EnableIDN bool

	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	emailMessage               = "{Property} is not a valid email address."
	emailIncorrectInputMessage = "{Property} must be a string. {type} given."

	maxEmailLocalLength = 64
	maxEmailLength      = 254
)

var (
	emailPattern = regexp.MustCompile("^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$")
	emailNamePattern = regexp.MustCompile(`^(?:"[^"]*"|[^"<>]*?)\s*<([^<>]+)>$`)
)

func (Email) Name() string                 { return "email" }
func (Email) Handler() rulekit.RuleHandler { return emailHandler{} }

type emailHandler struct{}

func (emailHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Email](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	s, ok := stringOf(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, emailIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if !validEmail(s, r.AllowName, r.EnableIDN) {
		res.AddError(msg(r.Message, emailMessage), ctx.ErrorParams("value", s))
	}
	return res, nil
}

func validEmail(s string, allowName, idn bool) bool {
	addr := s
	if allowName {
		if m := emailNamePattern.FindStringSubmatch(s); m != nil {
			addr = m[1]
		}
	}
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	local, domain := addr[:at], addr[at+1:]
	if len(local) > maxEmailLocalLength || len(addr) > maxEmailLength {
		return false
	}
	if idn {
		ascii, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			return false
		}
		domain = ascii
	}
	return emailPattern.MatchString(local + "@" + domain)
}
