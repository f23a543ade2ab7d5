package log

import "github.com/sirupsen/logrus"

// BadgerAdapter satisfies the badger.Logger interface with a logrus entry,
// so the render cache's database logs flow through the application logger.
type BadgerAdapter struct {
	*logrus.Entry
}

// NewBadgerAdapter wraps a logrus entry for badger.
func NewBadgerAdapter(entry *logrus.Entry) *BadgerAdapter {
	return &BadgerAdapter{entry}
}

func (l *BadgerAdapter) Errorf(f string, v ...interface{})   { l.Entry.Errorf(f, v...) }
func (l *BadgerAdapter) Warningf(f string, v ...interface{}) { l.Entry.Warningf(f, v...) }
func (l *BadgerAdapter) Infof(f string, v ...interface{})    { l.Entry.Infof(f, v...) }
func (l *BadgerAdapter) Debugf(f string, v ...interface{})   { l.Entry.Debugf(f, v...) }
