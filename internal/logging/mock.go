package logging

// MockLogger is an in-memory Logger implementation for tests.
// It records every entry so assertions can inspect what was logged.
type MockLogger struct {
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// WithError returns a new logger with an error field attached.
// The returned logger shares the entry slice so captured entries stay visible
// on the root mock.
func (m *MockLogger) WithError(err error) Logger {
	return &childMock{parent: m.root(), pendingError: err, pendingFields: m.pendingFields}
}

// WithField returns a new logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a new logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	return &childMock{parent: m.root(), pendingError: m.pendingError, pendingFields: allFields}
}

func (m *MockLogger) root() *MockLogger { return m }

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// EntriesByLevel returns all captured entries of a specific level.
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.Entries {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear removes all captured log entries.
func (m *MockLogger) Clear() {
	m.Entries = nil
}

// childMock funnels entries from derived loggers back to the root mock.
type childMock struct {
	parent        *MockLogger
	pendingError  error
	pendingFields []Field
}

func (c *childMock) Debug(msg string, fields ...Field) { c.record("DEBUG", msg, fields) }
func (c *childMock) Info(msg string, fields ...Field)  { c.record("INFO", msg, fields) }
func (c *childMock) Warn(msg string, fields ...Field)  { c.record("WARN", msg, fields) }
func (c *childMock) Error(msg string, fields ...Field) { c.record("ERROR", msg, fields) }

func (c *childMock) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, c.pendingFields...), fields...)
	c.parent.Entries = append(c.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   c.pendingError,
	})
}

func (c *childMock) WithError(err error) Logger {
	return &childMock{parent: c.parent, pendingError: err, pendingFields: c.pendingFields}
}

func (c *childMock) WithField(key string, value interface{}) Logger {
	return c.WithFields(Field{Key: key, Value: value})
}

func (c *childMock) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field{}, c.pendingFields...), fields...)
	return &childMock{parent: c.parent, pendingError: c.pendingError, pendingFields: allFields}
}
