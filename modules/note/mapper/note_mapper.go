package mapper

import (
	"familyhub/modules/note/dto"
	"familyhub/modules/note/entity"
)

func ToNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:           note.ID,
		GroupID:      note.GroupID,
		Title:        note.Title,
		Content:      note.Content,
		Color:        note.Color,
		Pinned:       note.Pinned,
		AuthorEmail:  note.AuthorEmail,
		AuthorName:   note.AuthorName,
		LastEditedBy: note.LastEditedBy,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}

func ToNoteListResponse(notes []entity.Note) *dto.NoteListResponse {
	items := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		items = append(items, *ToNoteResponse(&notes[i]))
	}
	return &dto.NoteListResponse{Notes: items, Total: len(items)}
}
