package utils

import "testing"

func TestExtractObjectPathValid(t *testing.T) {
	path, err := ExtractObjectPath("https://storage.googleapis.com/my-bucket/flags/image.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if path != "flags/image.jpg" {
		t.Errorf("expected 'flags/image.jpg', got '%s'", path)
	}
}

func TestExtractObjectPathNestedFolders(t *testing.T) {
	path, err := ExtractObjectPath("https://storage.googleapis.com/my-bucket/subcategories/1234_icon.png")
	if err != nil {
		t.Fatal(err)
	}
	if path != "subcategories/1234_icon.png" {
		t.Errorf("expected 'subcategories/1234_icon.png', got '%s'", path)
	}
}

func TestExtractObjectPathInvalidPrefix(t *testing.T) {
	_, err := ExtractObjectPath("https://example.com/my-bucket/flags/image.jpg")
	if err == nil {
		t.Fatal("expected error for invalid prefix")
	}
}

func TestExtractObjectPathNoBucketSeparator(t *testing.T) {
	_, err := ExtractObjectPath("https://storage.googleapis.com/nobucket")
	if err == nil {
		t.Fatal("expected error for no bucket separator")
	}
}
