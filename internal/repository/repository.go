// Package repository implements persistence for dealerships, reviews and inventory
// (MongoDB) and for users, revoked tokens and the car catalog (Postgres via gorm).
package repository

import "errors"

var ErrNotFound = errors.New("record not found")
