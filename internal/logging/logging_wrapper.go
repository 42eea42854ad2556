package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// CommandWrapper gives every command run its own LogData and logs the
// start, completion or failure of the run.
func CommandWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(*cli.Context, *LogData) error,
) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		logData := NewLogData(log)
		log.WithField("runID", logData.RunID().String()).Infof("Command.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(cCtx, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Command.%v.Error", loggingName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", loggingName)
		return nil
	}
}
