// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout places stars inside the widget and maps pointer positions
// back to star indices.
//
// Two formulas share the same inputs. [PreferredSize] computes the natural
// widget size from the star size. [StarRect] works the other way round: it
// divides the actual widget width among the stars, so a host may stretch
// the widget and the stars stretch with it. At the preferred size both
// formulas agree and every star is exactly StarSize wide.
//
// [HitIndex] is independent of rendering. It partitions the widget width into
// equal sections (one per star, or two per star in half-step mode) and
// reports the section under the pointer.
package layout
