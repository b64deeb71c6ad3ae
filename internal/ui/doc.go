package ui

// Package ui contains the Fyne-based desktop user interface. It wires the four
// navigation buttons, keyboard arrows and swipe gestures to the viewer cursor,
// renders the returned image, and saves the list when the window closes.
// All UI strings are localized via Localization.
