package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateKeyToSentinel_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "username index violation",
			err:     errors.New("write exception: write errors: [E11000 duplicate key error collection: useradmin.accounts index: username_unique dup key: { username: \"rasul\" }]"),
			wantErr: ErrUsernameAlreadyExists,
		},
		{
			name:    "email index violation",
			err:     errors.New("write exception: write errors: [E11000 duplicate key error collection: useradmin.accounts index: email_unique dup key: { email: \"rasul@example.com\" }]"),
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "unattributable duplicate",
			err:     errors.New("E11000 duplicate key error"),
			wantErr: ErrAccountAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, duplicateKeyToSentinel(tt.err), tt.wantErr)
		})
	}
}
