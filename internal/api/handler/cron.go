package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/scheduler"
	"github.com/vfg2006/author-ranking-api/pkg/apiErrors"
)

// Tipos de cron job aceitos pelo disparo manual
const (
	CronJobTypeSnapshots  = "snapshots"
	CronJobTypeBoostSweep = "boost-sweep"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os agendadores expostos para disparo manual
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
	BoostSweepService   *scheduler.BoostSweepService
}

// RunCronJob dispara manualmente um agendador específico
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshots:
			services.SnapshotSyncService.TriggerManualSync()
		case CronJobTypeBoostSweep:
			services.BoostSweepService.TriggerManualSync()
		case CronJobTypeAll:
			services.SnapshotSyncService.TriggerManualSync()
			services.BoostSweepService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparado manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		}); err != nil {
			logrus.Error("Erro ao enviar resposta do disparo de cron:", err)
		}
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"snapshots":   services.SnapshotSyncService.GetStatus(),
			"boost_sweep": services.BoostSweepService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Erro ao enviar resposta do status dos crons:", err)
		}
	}
}
