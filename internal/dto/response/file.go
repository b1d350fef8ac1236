package response

import (
	"kryptonite/internal/data/entity"
)

type FileResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	UserID string `json:"user_id"`
}

type FilesResponse struct {
	Files []FileResponse `json:"files"`
}

// Helper converters
func FileToResponse(file *entity.File) FileResponse {
	return FileResponse{
		ID:     file.ID.String(),
		URL:    file.URL,
		UserID: file.UserID.String(),
	}
}

func FilesToResponse(files []*entity.File) *FilesResponse {
	resp := &FilesResponse{
		Files: make([]FileResponse, 0, len(files)),
	}
	for _, file := range files {
		resp.Files = append(resp.Files, FileToResponse(file))
	}
	return resp
}
