package service

import "errors"

var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")

	ErrParse         = errors.New("file is not valid JSON")
	ErrWrongFileType = errors.New("wrong file type")

	ErrUserCancelled    = errors.New("cancelled by user")
	ErrImportInProgress = errors.New("another import is already in progress")
	ErrRestoreDeclined  = errors.New("restore was not confirmed")
)
