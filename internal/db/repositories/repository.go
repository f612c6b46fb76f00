package repositories

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrApplicantExists   = errors.New("applicant already exists")
	ErrVersionConflict   = errors.New("applicant was modified concurrently")
	ErrCommandNotFound   = errors.New("command not found")
)

type repository struct {
	db *pg.DB
}
