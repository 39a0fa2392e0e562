package mocks

//go:generate mockgen -destination=mock_storage.go -package=mocks igf/internal/storage CatalogStorage
//go:generate mockgen -destination=mock_doer.go -package=mocks igf/internal/services Doer
