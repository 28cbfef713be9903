package misc

import (
	"errors"
	"fmt"
	"os"
)

var ErrNoFileName = errors.New("no filename supplied")

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return []byte{}, ErrNoFileName
	}
	fileBytes, err := os.ReadFile(fileName)
	if err != nil {
		return []byte{}, fmt.Errorf("unable to read %s - %w", fileName, err)
	}
	return fileBytes, nil
}
