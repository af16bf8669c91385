// Package tracker defines Trackers, which track data generated while
// evaluating a policy and save the data after evaluation has finished
package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/gopredict/timestep"
)

// Tracker keeps track of data generated by the TimeSteps of an
// environment and saves the data once tracking has finished.
//
// Trackers must be passed every TimeStep of every episode in order,
// starting with the First TimeStep of the episode.
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// SaveData gob-encodes data into the file filename
func SaveData(filename string, data interface{}) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveData: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		return fmt.Errorf("saveData: could not encode data: %v", err)
	}
	return file.Close()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64

	if err = dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %v", err)
	}
	return data, nil
}
