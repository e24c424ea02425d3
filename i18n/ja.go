package i18n

// japanese translates the default rule templates.
var japanese = map[string]string{
	"{Property} cannot be blank.": "{Property}は必須です。",
	"{Property} not passed.":      "{Property}が渡されていません。",

	"The allowed types for {property} are integer, float and string. {type} given.": "{property}に使用できる型は整数、浮動小数点数、文字列です。{type}が渡されました。",
	"{Property} must be a number.":              "{Property}は数値でなければなりません。",
	"{Property} must be an integer.":            "{Property}は整数でなければなりません。",
	"{Property} must be no less than {min}.":    "{Property}は{min}以上でなければなりません。",
	"{Property} must be no greater than {max}.": "{Property}は{max}以下でなければなりません。",

	"{Property} must be a string. {type} given.":                                                           "{Property}は文字列でなければなりません。{type}が渡されました。",
	"{Property} must contain at least {min, number} {min, plural, one{character} other{characters}}.":      "{Property}は{min, number}文字以上でなければなりません。",
	"{Property} must contain at most {max, number} {max, plural, one{character} other{characters}}.":       "{Property}は{max, number}文字以下でなければなりません。",
	"{Property} must contain exactly {exactly, number} {exactly, plural, one{character} other{characters}}.": "{Property}はちょうど{exactly, number}文字でなければなりません。",

	"{Property} must be a slice, an array or a map. {type} given.":                              "{Property}はスライス、配列、マップのいずれかでなければなりません。{type}が渡されました。",
	"{Property} must contain at least {min, number} {min, plural, one{item} other{items}}.":      "{Property}は{min, number}個以上の要素を含まなければなりません。",
	"{Property} must contain at most {max, number} {max, plural, one{item} other{items}}.":       "{Property}は{max, number}個以下の要素でなければなりません。",
	"{Property} must contain exactly {exactly, number} {exactly, plural, one{item} other{items}}.": "{Property}はちょうど{exactly, number}個の要素を含まなければなりません。",

	"{Property} is invalid.":                    "{Property}が不正です。",
	"{Property} is not a valid email address.":  "{Property}は有効なメールアドレスではありません。",
	"{Property} is not a valid URL.":            "{Property}は有効なURLではありません。",
	"{Property} is not a valid JSON.":           "{Property}は有効なJSONではありません。",
	"{Property} must be a valid UUID.":          "{Property}は有効なUUIDでなければなりません。",
	"{Property} must be a string.":              "{Property}は文字列でなければなりません。",
	"{Property} must be a valid IP address.":    "{Property}は有効なIPアドレスでなければなりません。",
	"{Property} must not be an IPv4 address.":   "{Property}にIPv4アドレスは使用できません。",
	"{Property} must not be an IPv6 address.":   "{Property}にIPv6アドレスは使用できません。",
	"{Property} contains wrong subnet mask.":    "{Property}のサブネットマスクが不正です。",
	"{Property} must not be a subnet.":          "{Property}にサブネットは指定できません。",
	"{Property} is not in the allowed range.":   "{Property}は許可された範囲にありません。",
	"{Property} must be an IP address with specified subnet.": "{Property}はサブネットを指定したIPアドレスでなければなりません。",

	`{Property} must be either "{true}" or "{false}".`:                                      `{Property}は「{true}」または「{false}」でなければなりません。`,
	`{Property} must be "{true}".`:                                                          `{Property}は「{true}」でなければなりません。`,
	"The allowed types for {property} are integer, float, string and boolean. {type} given.": "{property}に使用できる型は整数、浮動小数点数、文字列、真偽値です。{type}が渡されました。",

	"{Property} is not in the list of acceptable values.": "{Property}は許可された値ではありません。",
	"{Property} is not a subset of acceptable values.":    "{Property}は許可された値の部分集合ではありません。",
	"{Property} must be a slice or an array. {type} given.": "{Property}はスライスまたは配列でなければなりません。{type}が渡されました。",

	`{Property} must be equal to "{targetValueOrProperty}".`:                 `{Property}は「{targetValueOrProperty}」と等しくなければなりません。`,
	`{Property} must not be equal to "{targetValueOrProperty}".`:             `{Property}は「{targetValueOrProperty}」と等しくてはなりません。`,
	`{Property} must be greater than "{targetValueOrProperty}".`:             `{Property}は「{targetValueOrProperty}」より大きくなければなりません。`,
	`{Property} must be greater than or equal to "{targetValueOrProperty}".`: `{Property}は「{targetValueOrProperty}」以上でなければなりません。`,
	`{Property} must be less than "{targetValueOrProperty}".`:                `{Property}は「{targetValueOrProperty}」より小さくなければなりません。`,
	`{Property} must be less than or equal to "{targetValueOrProperty}".`:    `{Property}は「{targetValueOrProperty}」以下でなければなりません。`,
	"The allowed types for {property} are integer, float, string, boolean, nil, Stringer and time.Time. {type} given.":       "{property}に使用できる型は整数、浮動小数点数、文字列、真偽値、nil、Stringer、time.Timeです。{type}が渡されました。",
	"The allowed types for {targetProperty} are integer, float, string, boolean, nil, Stringer and time.Time. {type} given.": "{targetProperty}に使用できる型は整数、浮動小数点数、文字列、真偽値、nil、Stringer、time.Timeです。{type}が渡されました。",

	"{Property} must be a date.":                   "{Property}は日付でなければなりません。",
	"{Property} must be a date and time.":          "{Property}は日時でなければなりません。",
	"{Property} must be a time.":                   "{Property}は時刻でなければなりません。",
	"{Property} must be no earlier than {limit}.": "{Property}は{limit}以降でなければなりません。",
	"{Property} must be no later than {limit}.":   "{Property}は{limit}以前でなければなりません。",

	`Property "{path}" is not found.`:                                                 `プロパティ「{path}」が見つかりません。`,
	"{Property} must be a map or an object. {type} given.":                           "{Property}はマップまたはオブジェクトでなければなりません。{type}が渡されました。",
	"Nested rule without rules requires {property} to be an object. {type} given.":   "ルールのないNestedでは{property}はオブジェクトでなければなりません。{type}が渡されました。",
	"Every map key of {property} must be an integer or a string. {type} given.":      "{property}のマップのキーは整数または文字列でなければなりません。{type}が渡されました。",
	"At least one of the inner rules must pass the validation.":                      "内部ルールの少なくとも1つを満たす必要があります。",
	"Exactly one of the inner rules must pass the validation.":                       "内部ルールのうちちょうど1つを満たす必要があります。",
	"Exactly 1 property from this list must be filled for {property}: {properties}.": "{property}では次のプロパティのうちちょうど1つを入力してください: {properties}。",
	"At least {min, number} {min, plural, one{property} other{properties}} from this list must be filled for {property}: {properties}.": "{property}では次のプロパティのうち少なくとも{min, number}個を入力してください: {properties}。",

	"{Property} must be array or iterable. {type} given.":                                                                   "{Property}は配列または反復可能な値でなければなりません。{type}が渡されました。",
	"The allowed types for item values of {property} are integer, float, string, boolean, Stringer and time.Time. {type} given.": "{property}の要素に使用できる型は整数、浮動小数点数、文字列、真偽値、Stringer、time.Timeです。{type}が渡されました。",
	"All iterable items of {property} must have the same type.":                                                             "{property}の要素はすべて同じ型でなければなりません。",
	"Every iterable's item of {property} must be unique.":                                                                   "{property}の要素は一意でなければなりません。",
}

// DefaultCatalog returns a Catalog holding the bundled translations of the
// default rule messages (currently Japanese). English needs no entries.
func DefaultCatalog(opts ...CatalogOption) *Catalog {
	c := NewCatalog(opts...)
	_ = c.Add("ja", japanese)
	return c
}
