package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MGTheTrain/textcrypt/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textcrypt/internal/pkg/logger"
)

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	textService cryptoalg.TextService
	keyStore    cryptoalg.KeyStore
	logger      logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(textService cryptoalg.TextService, keyStore cryptoalg.KeyStore, logger logger.Logger) (cryptoalg.KeyGenerationService, error) {
	if textService == nil {
		return nil, fmt.Errorf("text service must not be nil")
	}
	if keyStore == nil {
		return nil, fmt.Errorf("key store must not be nil")
	}
	return &keyGenerationService{
		textService: textService,
		keyStore:    keyStore,
		logger:      logger,
	}, nil
}

// Generate creates key material for format and stores it under the format's key file names in dir.
func (s *keyGenerationService) Generate(ctx context.Context, format cryptoalg.Format, dir string) ([]string, error) {
	keyPairID := uuid.New().String()
	s.logger.Info("Generating ", format, " keys with id ", keyPairID)

	blobs, err := s.textService.GenerateKeys(ctx, format)
	if err != nil {
		return nil, err
	}

	paths, err := s.keyStore.Save(ctx, dir, format, blobs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stored ", len(paths), " key files with id ", keyPairID)
	return paths, nil
}
