// SPDX-License-Identifier: EPL-2.0

package audfx_test

import (
	"fmt"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
	"github.com/sirupsen/logrus"
)

func ExampleProcessToMono16() {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	d := effects.NewDispatcher(effects.WithLogger(logger))

	src := audio.NewBufferSource(&audio.Buffer{Samples: []float64{0.5, 0, 0, 0}, SampleRate: 4})

	pcm, rate, err := audfx.ProcessToMono16(src, d, effects.Request{
		Effect: effects.EffectDelay,
		Params: effects.Params{"delay_time": 0.5, "feedback": 0.5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pcm, rate)
	// Output: [16383 0 8191 0 0 0] 4
}
