package handlers

import "mime/multipart"

type mockStorage struct {
	UploadCountryFlagFn     func(file multipart.File, filename, contentType string) (string, error)
	UploadCategoryIconFn    func(file multipart.File, filename, contentType string) (string, error)
	UploadSubcategoryIconFn func(file multipart.File, filename, contentType string) (string, error)
	DeleteFileFn            func(objectPath string) error
	DeleteFileCalls         []string
	UploadCallCount         int
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		DeleteFileCalls: []string{},
	}
}

func (m *mockStorage) UploadCountryFlag(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadCountryFlagFn != nil {
		return m.UploadCountryFlagFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/flags/test_flag.jpg", nil
}

func (m *mockStorage) UploadCategoryIcon(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadCategoryIconFn != nil {
		return m.UploadCategoryIconFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/categories/test_icon.jpg", nil
}

func (m *mockStorage) UploadSubcategoryIcon(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadSubcategoryIconFn != nil {
		return m.UploadSubcategoryIconFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/subcategories/test_icon.jpg", nil
}

func (m *mockStorage) DeleteFile(objectPath string) error {
	m.DeleteFileCalls = append(m.DeleteFileCalls, objectPath)
	if m.DeleteFileFn != nil {
		return m.DeleteFileFn(objectPath)
	}
	return nil
}
