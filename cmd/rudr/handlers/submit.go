package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/r4b3rt/rudr/internal/kube"
	"github.com/r4b3rt/rudr/pkg/schematic"
	"github.com/r4b3rt/rudr/pkg/workload"
)

// SubmitOptions holds the flag values for the submit command.
type SubmitOptions struct {
	FilePath   string
	ValuesPath string
	Kubeconfig string
	Namespace  string
	Name       string
	Wait       bool
	Timeout    time.Duration
}

// podSubmitter is the subset of the kube client used by Submit.
type podSubmitter interface {
	CreatePod(ctx context.Context, namespace string, pod *corev1.Pod) (*corev1.Pod, error)
	WaitForPodRunning(ctx context.Context, namespace, name string, timeout time.Duration) error
}

// Factory function variables for submit - can be replaced in tests.
var (
	// newKubeClient creates the Kubernetes client.
	newKubeClient = func(kubeconfigPath string) (podSubmitter, error) {
		return kube.NewClient(kubeconfigPath)
	}
)

// Submit renders a component schematic and creates the resulting pod on
// a Kubernetes cluster.
//
// The schematic is validated and its parameters resolved exactly as in
// Render. The pod name is taken from the --name flag, then the manifest
// metadata, then the first container.
func Submit(ctx context.Context, opts SubmitOptions) error {
	component, manifestName, err := loadComponent(opts.FilePath)
	if err != nil {
		return err
	}

	if err := component.Validate(); err != nil {
		return fmt.Errorf("component validation failed: %w", err)
	}

	values, err := loadValues(opts.ValuesPath)
	if err != nil {
		return err
	}

	resolved, err := component.ResolveParameters(values)
	if err != nil {
		return fmt.Errorf("parameter resolution failed: %w", err)
	}

	name := podName(opts.Name, manifestName, resolved)
	if name == "" {
		return fmt.Errorf("cannot derive a pod name from %s, use --name", opts.FilePath)
	}

	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: opts.Namespace,
			Labels: map[string]string{
				"app.kubernetes.io/managed-by": "rudr",
			},
		},
		Spec: workload.PodSpec(resolved),
	}

	client, err := newKubeClient(resolveKubeconfig(opts.Kubeconfig))
	if err != nil {
		return err
	}

	log.Printf("Creating pod %s/%s...", opts.Namespace, name)
	created, err := client.CreatePod(ctx, opts.Namespace, pod)
	if err != nil {
		return err
	}

	if opts.Wait {
		log.Printf("Waiting for pod %s/%s to be running...", opts.Namespace, created.Name)
		if err := client.WaitForPodRunning(ctx, opts.Namespace, created.Name, opts.Timeout); err != nil {
			return err
		}
	}

	printSubmitSuccess(opts.Namespace, created.Name)

	return nil
}

// podName picks the pod name: the flag wins, then the manifest metadata,
// then the first container.
func podName(flag, manifest string, c *schematic.Component) string {
	if flag != "" {
		return flag
	}
	if manifest != "" {
		return manifest
	}
	if len(c.Containers) > 0 {
		return c.Containers[0].Name
	}
	return ""
}

// resolveKubeconfig picks the kubeconfig path: the flag wins, then the
// KUBECONFIG environment variable, then the default home location.
func resolveKubeconfig(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	return clientcmd.RecommendedHomeFile
}

// printSubmitSuccess prints the success message with next steps.
func printSubmitSuccess(namespace, name string) {
	fmt.Println()
	fmt.Println("Pod submitted!")
	fmt.Println()
	fmt.Printf("  Pod: %s/%s\n", namespace, name)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  kubectl get pod %s -n %s\n", name, namespace)
	fmt.Printf("  kubectl logs %s -n %s\n", name, namespace)
	fmt.Println()
}
