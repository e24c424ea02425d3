package rules

import (
	"testing"

	"github.com/reoring/rulekit/i18n"
	"github.com/stretchr/testify/assert"
)

func TestDefaultMessages_HaveJapaneseTranslation(t *testing.T) {
	templates := []string{
		requiredMessage, requiredNotPassedMessage,
		numberIncorrectInputMessage, numberNotNumberMessage, numberNotIntegerMessage,
		numberLessThanMinMessage, numberGreaterThanMaxMessage,
		lengthIncorrectInputMessage, lengthLessThanMinMessage, lengthGreaterThanMaxMessage, lengthNotExactlyMessage,
		countIncorrectInputMessage, countLessThanMinMessage, countGreaterThanMaxMessage, countNotExactlyMessage,
		regexMessage, regexIncorrectInputMessage,
		emailMessage, emailIncorrectInputMessage,
		urlMessage, urlIncorrectInputMessage,
		ipIncorrectInputMessage, ipMessage, ipIPv4NotAllowedMessage, ipIPv6NotAllowedMessage,
		ipWrongCidrMessage, ipNoSubnetMessage, ipHasSubnetMessage, ipNotInRangeMessage,
		jsonMessage, jsonIncorrectInputMessage,
		booleanMessage, booleanIncorrectInputMessage, trueValueMessage,
		uuidMessage, uuidIncorrectInputMessage,
		inMessage, subsetMessage, subsetIncorrectInputMessage,
		compareIncorrectInputMessage, compareIncorrectDataSetMessage,
		dateIncorrectInputMessage, dateTimeIncorrectInputMessage, timeIncorrectInputMessage,
		dateTooEarlyMessage, dateTooLateMessage,
		stringValueMessage,
		nestedNoPropertyPathMessage, nestedIncorrectInputMessage, nestedNoRulesMessage,
		eachIncorrectInputMessage, eachIncorrectInputKeyMessage,
		anyRuleMessage, oneOfMessage,
		filledAtLeastMessage, filledOnlyOneOfMessage, filledIncorrectInput,
		uniqueMessage, uniqueIncorrectInputMessage, uniqueIncorrectItemValueMessage, uniqueDifferentTypesMessage,
	}
	for _, m := range compareMessages {
		templates = append(templates, m)
	}

	catalog := i18n.DefaultCatalog()
	for _, tpl := range templates {
		assert.NotEqual(t, tpl, catalog.Translate(tpl, "ja"), "missing ja translation for %q", tpl)
	}
}
