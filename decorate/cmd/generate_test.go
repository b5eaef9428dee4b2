/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	kyaml "sigs.k8s.io/yaml"
)

func runRoot(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func readDocuments(path string) []*unstructured.Unstructured {
	file, err := os.Open(path)
	Expect(err).NotTo(HaveOccurred())
	defer file.Close()
	reader := utilyaml.NewYAMLReader(bufio.NewReader(file))
	var result []*unstructured.Unstructured
	for {
		document, err := reader.Read()
		if err == io.EOF {
			break
		}
		Expect(err).NotTo(HaveOccurred())
		if len(bytes.TrimSpace(document)) == 0 {
			continue
		}
		raw, err := kyaml.YAMLToJSON(document)
		Expect(err).NotTo(HaveOccurred())
		// decode through the unstructured json scheme, so that integers come back as int64
		object := &unstructured.Unstructured{}
		Expect(object.UnmarshalJSON(raw)).To(Succeed())
		result = append(result, object)
	}
	return result
}

var _ = Describe("testing: generate.go", func() {
	var projectRoot string
	var outputDir string

	BeforeEach(func() {
		projectRoot = GinkgoT().TempDir()
		outputDir = filepath.Join(GinkgoT().TempDir(), "manifests")
		Expect(os.MkdirAll(filepath.Join(projectRoot, "deploy", "overlays"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(projectRoot, "deploy", "base.yaml"), []byte("version: 1.0.0\nports:\n- name: http\n  containerPort: 8080\n"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(projectRoot, "deploy", "overlays", "replicas.yaml"), []byte("replicas: ${DEMO_REPLICAS}\n"), 0o644)).To(Succeed())
		Expect(os.Setenv("DEMO_REPLICAS", "3")).To(Succeed())
		DeferCleanup(os.Unsetenv, "DEMO_REPLICAS")
	})

	It("should write one file per resource group", func() {
		_, err := runRoot("generate",
			"--project-root", projectRoot,
			"--name", "demo",
			"-t", "kubernetes",
			"-t", "openshift",
			"-f", filepath.Join(projectRoot, "deploy", "base.yaml"),
			"-f", filepath.Join(projectRoot, "deploy", "overlays"),
			"--output-dir", outputDir,
		)
		Expect(err).NotTo(HaveOccurred())

		documents := readDocuments(filepath.Join(outputDir, "kubernetes.yml"))
		Expect(documents).To(HaveLen(2))
		Expect(documents[0].GetKind()).To(Equal("Deployment"))
		Expect(documents[0].GetName()).To(Equal("demo"))
		replicas, found, err := unstructured.NestedInt64(documents[0].Object, "spec", "replicas")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(replicas).To(Equal(int64(3)))
		Expect(documents[1].GetKind()).To(Equal("Service"))

		documents = readDocuments(filepath.Join(outputDir, "openshift.yml"))
		Expect(documents[0].GetKind()).To(Equal("DeploymentConfig"))
	})

	It("should reject unknown targets", func() {
		_, err := runRoot("generate", "--project-root", projectRoot, "-t", "nomad")
		Expect(err).To(MatchError(ContainSubstring("invalid value for flag --target")))
	})

	It("should fail on missing fragments", func() {
		_, err := runRoot("generate", "--project-root", projectRoot, "-f", filepath.Join(projectRoot, "missing.yaml"))
		Expect(err).To(HaveOccurred())
		_, err = os.Stat(outputDir)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})

var _ = Describe("testing: version.go", func() {
	It("should print the build info as json", func() {
		out, err := runRoot("version", "-o", "json")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(`"version": "latest"`))
	})

	It("should reject invalid output formats", func() {
		_, err := runRoot("version", "-o", "xml")
		Expect(err).To(HaveOccurred())
	})
})
