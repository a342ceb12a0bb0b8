package firebase

import "mime/multipart"

// StorageClient abstracts storage operations for dependency injection and testing.
type StorageClient interface {
	UploadCountryFlag(file multipart.File, filename, contentType string) (string, error)
	UploadCategoryIcon(file multipart.File, filename, contentType string) (string, error)
	UploadSubcategoryIcon(file multipart.File, filename, contentType string) (string, error)
	DeleteFile(objectPath string) error
}

// FirebaseStorageClient is the real implementation that delegates to package-level functions.
type FirebaseStorageClient struct{}

func NewStorageClient() StorageClient {
	return &FirebaseStorageClient{}
}

func (f *FirebaseStorageClient) UploadCountryFlag(file multipart.File, filename, contentType string) (string, error) {
	return UploadCountryFlag(file, filename, contentType)
}

func (f *FirebaseStorageClient) UploadCategoryIcon(file multipart.File, filename, contentType string) (string, error) {
	return UploadCategoryIcon(file, filename, contentType)
}

func (f *FirebaseStorageClient) UploadSubcategoryIcon(file multipart.File, filename, contentType string) (string, error) {
	return UploadSubcategoryIcon(file, filename, contentType)
}

func (f *FirebaseStorageClient) DeleteFile(objectPath string) error {
	return DeleteFile(objectPath)
}
