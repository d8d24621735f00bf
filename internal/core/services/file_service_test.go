package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/core/services"
)

type FileServiceTestSuite struct {
	suite.Suite
	mockFileRepo *MockFileRepository
	mockDocStore *MockDocumentStore
	service      portssvc.FileSvcFacade
}

func (suite *FileServiceTestSuite) SetupTest() {
	suite.mockFileRepo = new(MockFileRepository)
	suite.mockDocStore = new(MockDocumentStore)
	suite.service = services.NewFileService(suite.mockFileRepo, suite.mockDocStore)
}

func (suite *FileServiceTestSuite) TestFetchFile_OwnerReadsOwnFile() {
	ctx := context.Background()
	meta := &domain.StoredFile{FileID: "file-1", OwnerUserID: "emp-1", Filename: "receipt.pdf", ObjectKey: "emp-1/optReceipt/file-1"}
	suite.mockFileRepo.On("FindFileByID", ctx, "file-1").Return(meta, nil).Once()
	suite.mockDocStore.On("Get", ctx, "emp-1/optReceipt/file-1").Return([]byte("bytes"), nil).Once()

	got, content, err := suite.service.FetchFile(ctx, employeeAuth("emp-1"), "file-1")

	suite.Require().NoError(err)
	suite.Equal(meta, got)
	suite.Equal([]byte("bytes"), content)
}

func (suite *FileServiceTestSuite) TestFetchFile_HRReadsAnyFile() {
	ctx := context.Background()
	meta := &domain.StoredFile{FileID: "file-1", OwnerUserID: "emp-1", ObjectKey: "emp-1/optReceipt/file-1"}
	suite.mockFileRepo.On("FindFileByID", ctx, "file-1").Return(meta, nil).Once()
	suite.mockDocStore.On("Get", ctx, "emp-1/optReceipt/file-1").Return([]byte("bytes"), nil).Once()

	_, _, err := suite.service.FetchFile(ctx, hrAuth(), "file-1")

	suite.Require().NoError(err)
}

func (suite *FileServiceTestSuite) TestFetchFile_OtherEmployeeForbidden() {
	ctx := context.Background()
	meta := &domain.StoredFile{FileID: "file-1", OwnerUserID: "emp-1", ObjectKey: "emp-1/optReceipt/file-1"}
	suite.mockFileRepo.On("FindFileByID", ctx, "file-1").Return(meta, nil).Once()

	_, _, err := suite.service.FetchFile(ctx, employeeAuth("emp-2"), "file-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDocStore.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *FileServiceTestSuite) TestFetchFile_UnknownFile() {
	ctx := context.Background()
	suite.mockFileRepo.On("FindFileByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.FetchFile(ctx, hrAuth(), "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FileServiceTestSuite) TestFetchFile_StoreFailure() {
	ctx := context.Background()
	meta := &domain.StoredFile{FileID: "file-1", OwnerUserID: "emp-1", ObjectKey: "emp-1/optReceipt/file-1"}
	suite.mockFileRepo.On("FindFileByID", ctx, "file-1").Return(meta, nil).Once()
	suite.mockDocStore.On("Get", ctx, "emp-1/optReceipt/file-1").Return(nil, context.DeadlineExceeded).Once()

	_, _, err := suite.service.FetchFile(ctx, hrAuth(), "file-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func TestFileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FileServiceTestSuite))
}
