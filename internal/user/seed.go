package user

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile builds a MemRegistry from a JSON array of users.
func LoadFile(path string) (*MemRegistry, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read seed %s: %w", path, err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, 0, fmt.Errorf("parse seed %s: %w", path, err)
	}

	return NewMemRegistry(users), len(users), nil
}
