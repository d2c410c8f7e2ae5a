package tests

// Mock generation for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name ReportService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename report_service_mock.go --with-expecter
//go:generate mockery --name ArchiveService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename archive_service_mock.go --with-expecter
