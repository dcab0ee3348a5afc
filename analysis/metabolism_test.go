// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package analysis

import "testing"

func TestDominantMetabolismFirstMaximumWins(t *testing.T) {
	t.Parallel()

	components := []MetabolismComponent{
		{Type: "Carbohydrate", Percentage: NewNumber(30)},
		{Type: "Fat", Percentage: NewNumber(40)},
		{Type: "Protein", Percentage: NewNumber(40)},
	}

	got, ok := DominantMetabolism(components)
	if !ok {
		t.Fatal("expected dominant component")
	}
	if got.Type != "Fat" {
		t.Fatalf("expected first maximum Fat, got %q", got.Type)
	}
}

func TestDominantMetabolismEmpty(t *testing.T) {
	t.Parallel()

	if _, ok := DominantMetabolism(nil); ok {
		t.Fatal("expected no dominant component for empty breakdown")
	}
}

func TestDominantMetabolismSingle(t *testing.T) {
	t.Parallel()

	got, ok := DominantMetabolism([]MetabolismComponent{{Type: "Mixed", Percentage: NewNumber(100)}})
	if !ok || got.Type != "Mixed" {
		t.Fatalf("unexpected dominant component %#v", got)
	}
}
