/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

// DominantMetabolism returns the component with the highest percentage.
// On ties the first component wins. ok is false for an empty breakdown.
func DominantMetabolism(components []MetabolismComponent) (dominant MetabolismComponent, ok bool) {
	if len(components) == 0 {
		return MetabolismComponent{}, false
	}

	dominant = components[0]
	for _, c := range components[1:] {
		if c.Percentage.Float() > dominant.Percentage.Float() {
			dominant = c
		}
	}

	return dominant, true
}
