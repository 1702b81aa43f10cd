// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package units

// Selection is the converter's current category and from/to units. From and
// To always name units of the current category.
type Selection struct {
	category Category
	from     string
	to       string
}

// NewSelection returns a selection for c with the default unit pair. An
// invalid category falls back to Length.
func NewSelection(c Category) *Selection {
	s := &Selection{}
	if !c.Valid() {
		c = Length
	}
	s.SetCategory(c)
	return s
}

// SetCategory switches the category and resets From to its first unit and To
// to its second (or first, when it has only one).
func (s *Selection) SetCategory(c Category) error {
	names := Units(c)
	if len(names) == 0 {
		return &ConversionError{Category: c.String(), Err: ErrUnknownCategory}
	}
	s.category = c
	s.from = names[0]
	s.to = names[0]
	if len(names) > 1 {
		s.to = names[1]
	}
	return nil
}

// SetFrom selects the source unit; it must belong to the current category.
func (s *Selection) SetFrom(unit string) error {
	name, ok := Resolve(s.category, unit)
	if !ok {
		return &ConversionError{Category: s.category.String(), Unit: unit, Err: ErrUnknownUnit}
	}
	s.from = name
	return nil
}

// SetTo selects the destination unit; it must belong to the current category.
func (s *Selection) SetTo(unit string) error {
	name, ok := Resolve(s.category, unit)
	if !ok {
		return &ConversionError{Category: s.category.String(), Unit: unit, Err: ErrUnknownUnit}
	}
	s.to = name
	return nil
}

// Swap exchanges From and To.
func (s *Selection) Swap() {
	s.from, s.to = s.to, s.from
}

// CycleCategory moves delta steps through the category menu, wrapping around.
func (s *Selection) CycleCategory(delta int) {
	all := Categories()
	s.SetCategory(all[wrap(int(s.category)+delta, len(all))])
}

// CycleFrom moves From delta steps through the unit menu, wrapping around.
func (s *Selection) CycleFrom(delta int) {
	s.from = cycle(Units(s.category), s.from, delta)
}

// CycleTo moves To delta steps through the unit menu, wrapping around.
func (s *Selection) CycleTo(delta int) {
	s.to = cycle(Units(s.category), s.to, delta)
}

func (s *Selection) Category() Category { return s.category }
func (s *Selection) From() string       { return s.from }
func (s *Selection) To() string         { return s.to }

// Units returns the unit names offered for both menus.
func (s *Selection) Units() []string { return Units(s.category) }

// Convert converts value with the current selection.
func (s *Selection) Convert(value float64) (float64, error) {
	return Convert(s.category, s.from, s.to, value)
}

func cycle(names []string, current string, delta int) string {
	for i, n := range names {
		if n == current {
			return names[wrap(i+delta, len(names))]
		}
	}
	return names[0]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
