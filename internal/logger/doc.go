// Package logger wraps zap with a console encoder, level parsing and context
// helpers. The terminal belongs to the keypad, so the global logger discards
// everything until Setup points it at a file.
package logger
