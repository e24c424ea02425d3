package rules

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/reoring/rulekit"
)

// Ip checks that a string is an IPv4 or IPv6 address, optionally with a CIDR
// suffix and optionally restricted to Ranges.
//
// Ranges entries are addresses, CIDR blocks or aliases (any, private,
// multicast, linklocal, localhost, loopback, documentation, system). A
// leading "!" excludes the entry. Entries are checked in order and the first
// match decides.
type Ip struct {
	DisallowIPv4 bool
	DisallowIPv6 bool
	// AllowSubnet accepts a CIDR suffix; RequireSubnet demands one.
	AllowSubnet   bool
	RequireSubnet bool
	// AllowNegation accepts a leading "!" on the value.
	AllowNegation bool
	Ranges        []string

	IncorrectInputMessage string
	Message               string
	IPv4NotAllowedMessage string
	IPv6NotAllowedMessage string
	WrongCidrMessage      string
	NoSubnetMessage       string
	HasSubnetMessage      string
	NotInRangeMessage     string

	Conditions
}

const (
	ipIncorrectInputMessage = "{Property} must be a string. {type} given."
	ipMessage               = "{Property} must be a valid IP address."
	ipIPv4NotAllowedMessage = "{Property} must not be an IPv4 address."
	ipIPv6NotAllowedMessage = "{Property} must not be an IPv6 address."
	ipWrongCidrMessage      = "{Property} contains wrong subnet mask."
	ipNoSubnetMessage       = "{Property} must be an IP address with specified subnet."
	ipHasSubnetMessage      = "{Property} must not be a subnet."
	ipNotInRangeMessage     = "{Property} is not in the allowed range."
)

// ipAliases expands range aliases into CIDR blocks or other aliases.
var ipAliases = map[string][]string{
	"any":           {"0.0.0.0/0", "::/0"},
	"private":       {"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16", "fd00::/8"},
	"multicast":     {"224.0.0.0/4", "ff00::/8"},
	"linklocal":     {"169.254.0.0/16", "fe80::/10"},
	"localhost":     {"127.0.0.0/8", "::1"},
	"loopback":      {"127.0.0.0/8", "::1"},
	"documentation": {"192.0.2.0/24", "198.51.100.0/24", "203.0.113.0/24", "2001:db8::/32"},
	"system":        {"multicast", "linklocal", "localhost", "documentation"},
}

func (Ip) Name() string                 { return "ip" }
func (Ip) Handler() rulekit.RuleHandler { return ipHandler{} }

type ipHandler struct{}

func (ipHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Ip](rule)
	if err != nil {
		return nil, err
	}
	if r.DisallowIPv4 && r.DisallowIPv6 {
		return nil, rulekit.NewConfigError(r.Name(), "both IPv4 and IPv6 are disallowed")
	}
	ranges, err := expandIPRanges(r.Ranges)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	s, ok := stringOf(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, ipIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	params := ctx.ErrorParams("value", s)
	fail := func(custom, def string) (*rulekit.Result, error) {
		return res.AddError(msg(custom, def), params), nil
	}

	ip := s
	if r.AllowNegation {
		ip = strings.TrimPrefix(ip, "!")
	}
	addrPart, cidr, hasCidr := strings.Cut(ip, "/")
	addr, err := netip.ParseAddr(addrPart)
	if err != nil || addr.Zone() != "" {
		return fail(r.Message, ipMessage)
	}
	if addr.Is4() && r.DisallowIPv4 {
		return fail(r.IPv4NotAllowedMessage, ipIPv4NotAllowedMessage)
	}
	if addr.Is6() && r.DisallowIPv6 {
		return fail(r.IPv6NotAllowedMessage, ipIPv6NotAllowedMessage)
	}
	bits := addr.BitLen()
	switch {
	case hasCidr && !r.AllowSubnet && !r.RequireSubnet:
		return fail(r.HasSubnetMessage, ipHasSubnetMessage)
	case !hasCidr && r.RequireSubnet:
		return fail(r.NoSubnetMessage, ipNoSubnetMessage)
	case hasCidr:
		n, err := strconv.Atoi(cidr)
		if err != nil || n < 0 || n > addr.BitLen() {
			return fail(r.WrongCidrMessage, ipWrongCidrMessage)
		}
		bits = n
	}
	if len(ranges) > 0 && !inIPRanges(addr, bits, ranges) {
		return fail(r.NotInRangeMessage, ipNotInRangeMessage)
	}
	return res, nil
}

type ipRange struct {
	prefix  netip.Prefix
	negated bool
}

func expandIPRanges(entries []string) ([]ipRange, error) {
	var out []ipRange
	for _, e := range entries {
		rs, err := expandIPRange(e, false, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}
	return out, nil
}

func expandIPRange(entry string, negated bool, depth int) ([]ipRange, error) {
	if depth > len(ipAliases) {
		return nil, rulekit.NewConfigError("ip", "alias %q expands recursively", entry)
	}
	if rest, ok := strings.CutPrefix(entry, "!"); ok {
		entry, negated = rest, !negated
	}
	if alias, ok := ipAliases[entry]; ok {
		var out []ipRange
		for _, a := range alias {
			rs, err := expandIPRange(a, negated, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, rs...)
		}
		return out, nil
	}
	var prefix netip.Prefix
	if strings.Contains(entry, "/") {
		p, err := netip.ParsePrefix(entry)
		if err != nil {
			return nil, rulekit.NewConfigError("ip", "invalid range %q: %v", entry, err)
		}
		prefix = p.Masked()
	} else {
		a, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, rulekit.NewConfigError("ip", "invalid range %q: %v", entry, err)
		}
		prefix = netip.PrefixFrom(a, a.BitLen())
	}
	return []ipRange{{prefix: prefix, negated: negated}}, nil
}

// inIPRanges reports whether the subnet addr/bits lies inside the first
// matching range and that range is not negated.
func inIPRanges(addr netip.Addr, bits int, ranges []ipRange) bool {
	for _, r := range ranges {
		if r.prefix.Contains(addr) && r.prefix.Bits() <= bits {
			return !r.negated
		}
	}
	return false
}
