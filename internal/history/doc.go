// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps the append-only log of completed calculations and
// conversions, and turns a selected entry back into display text.
package history
