//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	tc "github.com/testcontainers/testcontainers-go"
)

// tcLog — вывод жизненного цикла контейнеров в stdout теста.
var tcLog = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// lifecycleLog — хуки, печатающие старт/остановку контейнера под коротким именем.
func lifecycleLog(name string) tc.ContainerLifecycleHooks {
	hook := func(event string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			tcLog.Printf("%s %s id=%s", name, event, id)
			return nil
		}
	}
	return tc.ContainerLifecycleHooks{
		PostStarts:     []tc.ContainerHook{hook("started")},
		PostReadies:    []tc.ContainerHook{hook("ready")},
		PostTerminates: []tc.ContainerHook{hook("terminated")},
	}
}
