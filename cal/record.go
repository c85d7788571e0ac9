// Copyright 2016 The Calcination Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cal

// Record holds a complete energy balance as an ordered sequence of
// label/value pairs, in report order
type Record struct {
	Labels []string  // quantity labels, in report order
	Values []float64 // quantity values; aligned with Labels
}

// Append adds a label/value pair to the end of this record
func (o *Record) Append(label string, value float64) {
	o.Labels = append(o.Labels, label)
	o.Values = append(o.Values, value)
}

// Value returns the value corresponding to a label. found tells whether the
// label exists in this record or not
func (o *Record) Value(label string) (value float64, found bool) {
	for i, l := range o.Labels {
		if l == label {
			return o.Values[i], true
		}
	}
	return
}
