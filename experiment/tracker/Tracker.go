// Package tracker implements Trackers, which record data generated by
// a running experiment and save it to disk once the experiment ends
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/samuelfneumann/gogrid/timestep"
)

// Tracker records data from the timesteps of a running experiment.
// Experiments call Track on every timestep they see and Save once,
// after the last episode. Saved data is read back with LoadData.
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// save writes tracked data to the file at filename
func save(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		log.Fatalf("could not encode tracked data: %v", err)
	}
}
