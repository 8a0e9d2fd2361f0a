// Copyright 2023 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strconv"
	"strings"
)

// Parser turns raw textual expressions into validated Expressions, against
// a fixed catalog.
type Parser struct {
	catalog *Catalog
}

// NewParser builds a Parser bound to the given catalog.
func NewParser(catalog *Catalog) *Parser {
	return &Parser{catalog: catalog}
}

// Parse implements the grammar:
//
//	[ scope_prefix SEP ] setting_ref [ "=" value ]
//	scope_prefix := "stripe" "." id [ "." "node" "." id ]
//	setting_ref  := name [ "." key ]
//	SEP          := "." | ":"
//
// separating scope_prefix from setting_ref. The "stripe."/".node." tokens
// and the name/key separator are always literal dots; only the scope
// boundary accepts either separator. Parse eagerly validates the result
// against an operation implied by value presence (see
// Expression.impliedOperation), so a structurally well-formed but
// catalog-illegal expression is still rejected here.
func (p *Parser) Parse(raw string) (Expression, error) {
	prefixPart, valuePresent, value := splitValue(raw)

	scope, settingRef, err := p.resolveScope(raw, prefixPart)
	if err != nil {
		return Expression{}, err
	}

	if settingRef == "" {
		return Expression{}, invalidInput(raw, "valid setting name not found")
	}
	if strings.ContainsRune(settingRef, ':') {
		return Expression{}, invalidInputBare(raw)
	}

	name, key, hasKey := splitSettingRef(settingRef)
	if name == "stripe" || name == "node" {
		return Expression{}, invalidInputBare(raw)
	}

	setting := p.catalog.Lookup(name)
	if setting == nil {
		return Expression{}, invalidInput(raw, "Invalid setting name: '"+name+"'")
	}
	if !hasKey {
		key = ""
	}

	expr := Expression{
		Setting:      setting,
		Scope:        scope,
		Key:          key,
		ValuePresent: valuePresent,
		Value:        value,
	}

	if err := expr.Validate(expr.impliedOperation()); err != nil {
		return Expression{}, err
	}

	return expr, nil
}

// splitValue finds the first '=' in raw, if any, and splits it into the
// prefix/setting portion and the (possibly absent, possibly empty) value.
func splitValue(raw string) (prefixPart string, valuePresent bool, value string) {
	idx := strings.IndexByte(raw, '=')
	if idx < 0 {
		return raw, false, ""
	}
	return raw[:idx], true, raw[idx+1:]
}

// splitSettingRef splits a setting_ref (name[.key]) on its first '.'. Unlike
// the scope prefix, this separator is always a literal dot, and everything
// after the first dot belongs to the key verbatim — map keys such as
// tc-properties' Java property names, or offheap-resources' entry names,
// are themselves dotted and must not be split any further.
func splitSettingRef(s string) (name, key string, hasKey bool) {
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// resolveScope consumes a leading "stripe.<id>[.node.<id>]" prefix, if
// present, and returns the resolved scope plus whatever remains of prefixPart
// for the setting_ref. The separators inside the scope prefix itself
// ("stripe" "." id, "." "node" "." id) are always literal dots; only the
// single separator between the scope prefix and the setting_ref accepts
// either "." or ":". When prefixPart does not begin with the literal
// "stripe" word, scope is CLUSTER and prefixPart, unchanged, is the
// setting_ref.
func (p *Parser) resolveScope(raw, prefixPart string) (Scope, string, error) {
	if !hasWordPrefix(prefixPart, "stripe") {
		return Cluster(), prefixPart, nil
	}
	rest := prefixPart[len("stripe"):]

	if len(rest) == 0 || rest[0] != '.' {
		return Scope{}, "", invalidInputBare(raw)
	}
	rest = rest[1:]

	stripeDigits, rest := consumeDigits(rest)
	stripeID, err := parseScopeID(raw, "stripe", stripeDigits)
	if err != nil {
		return Scope{}, "", err
	}

	if rest == "" {
		return Stripe(stripeID), "", nil
	}

	if rest[0] == '.' && hasWordPrefix(rest[1:], "node") {
		nodeRest := rest[len(".node"):]
		if len(nodeRest) == 0 || nodeRest[0] != '.' {
			return Scope{}, "", invalidInputBare(raw)
		}
		nodeRest = nodeRest[1:]

		nodeDigits, nodeRest := consumeDigits(nodeRest)
		nodeID, err := parseScopeID(raw, "node", nodeDigits)
		if err != nil {
			return Scope{}, "", err
		}
		if nodeRest == "" {
			return Node(stripeID, nodeID), "", nil
		}
		if nodeRest[0] != '.' && nodeRest[0] != ':' {
			return Scope{}, "", invalidInputBare(raw)
		}
		return Node(stripeID, nodeID), nodeRest[1:], nil
	}

	if rest[0] != '.' && rest[0] != ':' {
		return Scope{}, "", invalidInputBare(raw)
	}
	return Stripe(stripeID), rest[1:], nil
}

// hasWordPrefix reports whether s begins with word immediately followed by
// end-of-string or a separator, so "node" matches "node.2" but not
// "nodename".
func hasWordPrefix(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	rest := s[len(word):]
	return rest == "" || rest[0] == '.' || rest[0] == ':'
}

// consumeDigits splits s into its leading run of ASCII digits and
// whatever follows.
func consumeDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// parseScopeID parses a stripe/node ID token. A non-numeric token or a
// negative number is a bare structural error; zero is reported with a
// reason, matching the grammar's asymmetric treatment of the two cases.
func parseScopeID(raw, kind, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, invalidInputBare(raw)
	}
	if n == 0 {
		return 0, invalidInput(raw, "Expected "+kind+" ID to be greater than 0")
	}
	if n < 0 {
		return 0, invalidInputBare(raw)
	}
	return n, nil
}
