// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the full-screen calculator: a bubbletea model that owns a
// session.Session and routes keyboard, mouse and config reload events to it.
//
// All state changes happen in Update on the bubbletea event loop, so the
// session needs no locking.
package app
