package constants

const (
	// Version of unistrap
	Version = "0.0.1"

	// Copyright line printed with the version banner
	Copyright = "Copyright (c) 2026, Ian Moffett"

	// WarningColor used in warning texts
	WarningColor = "\033[1;33m%s\033[0m"
	// ErrorColor used in error texts
	ErrorColor = "\033[1;31m%s\033[0m"
)
