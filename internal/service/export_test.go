package service

// MaxReportSamples re-exports maxReportSamples for external package tests.
const MaxReportSamples = maxReportSamples
