// Mood Selector
// Copyright (c) 2026 The Mood Selector Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mood Selector.
//
// Mood Selector is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mood Selector is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mood Selector.  If not, see <http://www.gnu.org/licenses/>.

package presets

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// MinSuggestSimilarity is the lowest Jaro-Winkler score a stored name needs
// to be offered as a correction.
const MinSuggestSimilarity float32 = 0.8

type suggestion struct {
	name       string
	similarity float32
}

// Suggest returns names from candidates that look like a mistyped query,
// best match first. Scoring ignores case; the query itself is never
// suggested.
func Suggest(query string, candidates []string) []string {
	query = strings.TrimSuffix(strings.TrimSpace(query), Ext)
	if query == "" {
		return nil
	}
	lowerQuery := strings.ToLower(query)

	var matches []suggestion
	for _, candidate := range candidates {
		if candidate == query {
			continue
		}
		similarity := edlib.JaroWinklerSimilarity(lowerQuery, strings.ToLower(candidate))
		if similarity >= MinSuggestSimilarity {
			matches = append(matches, suggestion{name: candidate, similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.name)
	}
	return names
}
