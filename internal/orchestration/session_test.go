package orchestration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botatelier/prompt-studio/studio-orchestrator/internal/models"
)

func skiShopArtifact() *models.PromptArtifact {
	return &models.PromptArtifact{
		SystemPrompt: "You are a ski shop assistant.",
		ExampleQuestions: []string{
			"Quels skis recommandez-vous pour un débutant ?",
			"Comment retourner un article ?",
			"Avez-vous des promotions en cours ?",
			"Quelle est la durée de livraison ?",
		},
	}
}

func TestSession_StoreArtifact(t *testing.T) {
	t.Run("installs_artifact_as_edited_prompt", func(t *testing.T) {
		session := NewSession()

		session.StoreArtifact(skiShopArtifact())

		snapshot := session.Snapshot()
		assert.Equal(t, "You are a ski shop assistant.", snapshot.GeneratedPrompt)
		assert.Equal(t, "You are a ski shop assistant.", snapshot.EditedPrompt)
		assert.Len(t, snapshot.ExampleQuestions, 4)
	})

	t.Run("regeneration_resets_edits_but_keeps_transcript", func(t *testing.T) {
		session := NewSession()
		session.StoreArtifact(skiShopArtifact())
		session.UpdatePrompt("You are an edited assistant.")
		session.AppendTurn(models.RoleUser, "Bonjour")

		fresh := skiShopArtifact()
		fresh.SystemPrompt = "You are a regenerated assistant."
		session.StoreArtifact(fresh)

		snapshot := session.Snapshot()
		assert.Equal(t, "You are a regenerated assistant.", snapshot.GeneratedPrompt)
		assert.Equal(t, "You are a regenerated assistant.", snapshot.EditedPrompt)
		assert.Len(t, snapshot.Transcript, 1)
	})
}

func TestSession_UpdatePrompt(t *testing.T) {
	session := NewSession()
	session.StoreArtifact(skiShopArtifact())

	session.UpdatePrompt("You are an edited assistant.")

	snapshot := session.Snapshot()
	assert.Equal(t, "You are a ski shop assistant.", snapshot.GeneratedPrompt)
	assert.Equal(t, "You are an edited assistant.", snapshot.EditedPrompt)
	assert.Equal(t, "You are an edited assistant.", session.EditedPrompt())
}

func TestSession_SetProjectID(t *testing.T) {
	t.Run("changing_project_clears_transcript", func(t *testing.T) {
		session := NewSession()
		session.SetProjectID("project-a")
		session.AppendTurn(models.RoleUser, "Bonjour")
		session.AppendTurn(models.RoleAssistant, "Bonjour!")

		session.SetProjectID("project-b")

		snapshot := session.Snapshot()
		assert.Equal(t, "project-b", snapshot.ProjectID)
		assert.Len(t, snapshot.Transcript, 0)
	})

	t.Run("resetting_same_project_keeps_transcript", func(t *testing.T) {
		session := NewSession()
		session.SetProjectID("project-a")
		session.AppendTurn(models.RoleUser, "Bonjour")

		session.SetProjectID("project-a")

		snapshot := session.Snapshot()
		assert.Len(t, snapshot.Transcript, 1)
	})

	t.Run("empty_project_unbinds", func(t *testing.T) {
		session := NewSession()
		session.SetProjectID("project-a")

		session.SetProjectID("")

		assert.Equal(t, "", session.ProjectID())
	})
}

func TestSession_Transcript(t *testing.T) {
	session := NewSession()

	session.AppendTurn(models.RoleUser, "Bonjour")
	session.AppendTurn(models.RoleAssistant, "Bonjour! Comment puis-je vous aider ?")

	snapshot := session.Snapshot()
	require.Len(t, snapshot.Transcript, 2)
	assert.Equal(t, models.ConversationTurn{Role: models.RoleUser, Content: "Bonjour"}, snapshot.Transcript[0])
	assert.Equal(t, models.RoleAssistant, snapshot.Transcript[1].Role)

	session.ClearTranscript()
	assert.Len(t, session.Snapshot().Transcript, 0)
}

func TestSession_Snapshot(t *testing.T) {
	t.Run("empty_session_has_empty_collections", func(t *testing.T) {
		snapshot := NewSession().Snapshot()

		// Non-nil so they serialize as [] instead of null
		assert.NotNil(t, snapshot.ExampleQuestions)
		assert.NotNil(t, snapshot.Transcript)
		assert.Len(t, snapshot.ExampleQuestions, 0)
		assert.Len(t, snapshot.Transcript, 0)
	})

	t.Run("mutating_snapshot_does_not_touch_session", func(t *testing.T) {
		session := NewSession()
		session.StoreArtifact(skiShopArtifact())
		session.AppendTurn(models.RoleUser, "Bonjour")

		snapshot := session.Snapshot()
		snapshot.ExampleQuestions[0] = "changed"
		snapshot.Transcript[0].Content = "changed"

		fresh := session.Snapshot()
		assert.Equal(t, "Quels skis recommandez-vous pour un débutant ?", fresh.ExampleQuestions[0])
		assert.Equal(t, "Bonjour", fresh.Transcript[0].Content)
	})
}
