/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log holds the package-global zap logger used for the library's
// non-fatal diagnostics. The default logger writes console-encoded
// warnings to stderr; embedding binaries replace it with their own via
// ReplaceGlobals (a zap.NewNop logger silences the library entirely).
package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// global is the current logger. Replaced atomically, never mutated.
var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(defaultLogger())
}

// defaultLogger builds the console logger used until ReplaceGlobals is
// called: warnings and above, stderr, no stacktraces.
func defaultLogger() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(core)
}

// L returns the current global logger.
func L() *zap.Logger {
	return global.Load()
}

// ReplaceGlobals swaps the global logger and returns a function that
// restores the previous one.
func ReplaceGlobals(logger *zap.Logger) func() {
	prev := global.Swap(logger)
	return func() { global.Store(prev) }
}

// With creates a child of the global logger with the given fields.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Debug logs a message at debug level on the global logger.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Warn logs a message at warn level on the global logger.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}
