// Package store persists the application's single JSON document: the
// last-fetched weather text, the current suggestions, and the to-do
// list. Every mutation rewrites the whole document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// WeatherRecord is the persisted form of the last fetch: the city and
// the already-decorated section texts.
type WeatherRecord struct {
	City           string `json:"city"`
	CurrentWeather string `json:"currentWeather"`
	Forecast       string `json:"forecast"`
	AirPollution   string `json:"airPollution"`
}

// Document is the whole persisted file.
type Document struct {
	Weather     WeatherRecord `json:"weather"`
	Suggestions []string      `json:"suggestions"`
	TodoItems   []string      `json:"todoItems"`
}

// Store reads and writes the JSON document at one path. A missing file
// loads as an empty document, never as an error.
type Store struct {
	path  string
	mutex sync.Mutex
}

// New creates a store for the document at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the document, returning an empty one when the file does
// not exist yet.
func (s *Store) Load() (Document, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.load()
}

// SaveWeather replaces the weather section and rewrites the document.
func (s *Store) SaveWeather(rec WeatherRecord) error {
	return s.update(func(doc *Document) {
		doc.Weather = rec
	})
}

// SaveSuggestions replaces the suggestions and rewrites the document.
func (s *Store) SaveSuggestions(suggestions []string) error {
	return s.update(func(doc *Document) {
		doc.Suggestions = suggestions
	})
}

// SaveTodos replaces the to-do items and rewrites the document.
func (s *Store) SaveTodos(todos []string) error {
	return s.update(func(doc *Document) {
		doc.TodoItems = todos
	})
}

// update performs one read-modify-write cycle over the whole document.
func (s *Store) update(mutate func(*Document)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	mutate(&doc)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Document{}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return doc, nil
}
