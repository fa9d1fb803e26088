// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Multi-limb shifts: combine a whole-limb shift (slice offset/copy) with
// a sub-limb shift (shlVU/shrVU).

// shl sets z = x << s and returns the normalized result.
func (z Buffer) shl(x Buffer, s uint) Buffer {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	if s == 0 {
		if same(z, x) {
			return z
		}
		return z.set(x)
	}

	limbShift := int(s / _W)
	bitShift := s % _W

	n := m + limbShift
	z = z.make(n + 1)
	if bitShift == 0 {
		copy(z[limbShift:n], x)
		z[n] = 0
	} else {
		z[n] = shlVU(z[limbShift:n], x, bitShift)
	}
	z[0:limbShift].clear()

	return z.norm()
}

// shr sets z = x >> s and returns the normalized result.
func (z Buffer) shr(x Buffer, s uint) Buffer {
	m := len(x)
	limbShift := int(s / _W)
	n := m - limbShift
	if n <= 0 {
		return z[:0]
	}
	bitShift := s % _W

	z = z.make(n)
	if bitShift == 0 {
		copy(z, x[limbShift:])
	} else {
		shrVU(z, x[limbShift:], bitShift)
	}

	return z.norm()
}

// bitAt reports whether bit i of x is set.
func (x Buffer) bitAt(i uint) bool {
	limb := i / _W
	if int(limb) >= len(x) {
		return false
	}
	return x[limb]&(1<<(i%_W)) != 0
}

// anyLowBitsSet reports whether any of the bottom k bits of x are set.
// Used by IBig's arithmetic-shift-right to decide whether to round the
// magnitude up (see ibig.go).
func (x Buffer) anyLowBitsSet(k uint) bool {
	limbs := k / _W
	rem := k % _W
	for i := uint(0); i < limbs && int(i) < len(x); i++ {
		if x[i] != 0 {
			return true
		}
	}
	if rem != 0 && int(limbs) < len(x) {
		if x[limbs]&((Word(1)<<rem)-1) != 0 {
			return true
		}
	}
	return false
}
