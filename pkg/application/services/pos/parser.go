package pos

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/application/dto"
)

// ParseSaleInput decomposes free text like "sold milk 2 for k15" into an
// item name, quantity, and unit price. The price is the first token made of
// the currency letter followed by a positive number, falling back to the
// first bare positive number; an integer token immediately before it is the
// quantity, defaulting to 1. The parse is heuristic: malformed input yields
// a ParseError, never a panic.
func (e *Engine) ParseSaleInput(input string) (dto.ParsedSale, error) {
	e.mu.RLock()
	prefix := currencyPrefix(e.settings.Currency)
	e.mu.RUnlock()

	tokens := tokenize(input)
	if len(tokens) < 2 {
		return dto.ParsedSale{}, &ParseError{Reason: "please provide item name and price"}
	}

	// A currency-marked token anywhere beats a bare number, so that the
	// quantity in "milk 2 k15" is not mistaken for the price.
	price := decimal.Zero
	priceIndex := -1
	for i, token := range tokens {
		if len(token) > 1 && strings.HasPrefix(token, prefix) {
			if p, err := decimal.NewFromString(token[len(prefix):]); err == nil && p.IsPositive() {
				price, priceIndex = p, i
				break
			}
		}
	}
	if priceIndex < 0 {
		for i, token := range tokens {
			if p, err := decimal.NewFromString(token); err == nil && p.IsPositive() {
				price, priceIndex = p, i
				break
			}
		}
	}
	if priceIndex < 0 {
		return dto.ParsedSale{}, &ParseError{Reason: "could not find price in input"}
	}

	quantity := 1
	nameEnd := priceIndex
	if priceIndex > 0 {
		if q, err := strconv.Atoi(tokens[priceIndex-1]); err == nil {
			quantity = q
			nameEnd = priceIndex - 1
		}
	}

	name := titleCase(strings.Join(tokens[:nameEnd], " "))
	if name == "" {
		return dto.ParsedSale{}, &ParseError{Reason: "could not identify item name"}
	}

	return dto.ParsedSale{
		ItemName: name,
		Quantity: quantity,
		Price:    price,
	}, nil
}

// tokenize lowercases the input, splits it on whitespace, and drops the
// filler words "sold" and "for".
func tokenize(input string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	tokens := fields[:0]
	for _, field := range fields {
		if field == "sold" || field == "for" {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// currencyPrefix returns the lowercase first letter of the currency symbol
func currencyPrefix(currency string) string {
	for _, r := range currency {
		return string(unicode.ToLower(r))
	}
	return "k"
}
