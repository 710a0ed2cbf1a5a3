package bitflag

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Synchronized serializes every operation on an Array behind one mutex.
//
// A plain RWMutex would not do: Get grows storage, and SetWidth replaces it
// wholesale, so every call needs exclusive access. SetWidth holds the lock for
// the whole migration and no caller observes a mixed-width layout.
type Synchronized struct {
	mu  sync.Mutex
	arr *Array
}

// NewSynchronized creates an empty Array and wraps it.
func NewSynchronized(width int, optFns ...Option) (*Synchronized, error) {
	arr, err := New(width, optFns...)
	if err != nil {
		return nil, err
	}
	return Synchronize(arr), nil
}

// Synchronize wraps arr. The caller must not use arr directly afterwards.
func Synchronize(arr *Array) *Synchronized {
	return &Synchronized{arr: arr}
}

// Do runs fn with exclusive access to the underlying Array.
// fn must not retain the Array after it returns.
func (s *Synchronized) Do(fn func(*Array) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.arr)
}

// Width returns the current field width.
func (s *Synchronized) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Width()
}

// Words returns the number of materialized storage words.
func (s *Synchronized) Words() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Words()
}

// Get returns the value of field i.
func (s *Synchronized) Get(i int) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Get(i)
}

// Set overwrites field i.
func (s *Synchronized) Set(i int, v uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Set(i, v)
}

// Or bitwise-ORs v into field i.
func (s *Synchronized) Or(i int, v uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Or(i, v)
}

// And bitwise-ANDs field i with v.
func (s *Synchronized) And(i int, v uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.And(i, v)
}

// Clear sets field i to zero.
func (s *Synchronized) Clear(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Clear(i)
}

// Toggle bitwise-XORs v into field i.
func (s *Synchronized) Toggle(i int, v uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Toggle(i, v)
}

// ClearAll discards all storage.
func (s *Synchronized) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arr.ClearAll()
}

// SetWidth changes the field width and migrates every materialized field.
func (s *Synchronized) SetWidth(width int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.SetWidth(width)
}

// RawWord returns storage word wordIndex, or 0 if it is not materialized.
func (s *Synchronized) RawWord(wordIndex int) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.RawWord(wordIndex)
}

// NonZero returns the set of logical indices whose field is non-zero.
func (s *Synchronized) NonZero() (*roaring.Bitmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.NonZero()
}

// Snapshot returns an independent copy of the underlying Array.
func (s *Synchronized) Snapshot() *Array {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.Clone()
}
