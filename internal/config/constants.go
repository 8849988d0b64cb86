package config

import "time"

// Base application details
const AppName = "quill"
const ConfigDirName = "quill"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "quill.log"

// UI layout
const StatusBarHeight = 1

// Status bar
const MessageTimeout = 4 * time.Second

// Editing defaults
const DefaultScrollOff = 3
const DefaultHistoryLimit = 100
const DefaultSystemClipboard = true

// AutoSaveInterval is how often the app persists a named, modified buffer
// when autosave is enabled.
const AutoSaveInterval = 30 * time.Second
